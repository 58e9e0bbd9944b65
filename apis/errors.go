/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// CodedError is an error classified by a machine-readable code.
//
// For prefix validation failures the code is the kind identifier, e.g.
// "exceeds_max_length". Adapters treat an empty or unknown code as an
// internal error.
type CodedError interface {
	error

	// ErrorCode returns the canonical, non-empty code.
	ErrorCode() string
}

// ReasonedError is an error that records where it was raised, as a
// dot-separated operation identifier such as "typeid.prefix.scan".
type ReasonedError interface {
	error

	// ErrorReason returns the operation identifier. May be empty.
	ErrorReason() string
}

// DetailedError exposes structured details, typically one field violation.
//
// Implementations return a fresh slice; callers may keep it.
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// MessagedError exposes the human-readable message without the code and
// reason that Error() prepends.
type MessagedError interface {
	error

	// ErrorMessage returns the bare message.
	ErrorMessage() string
}
