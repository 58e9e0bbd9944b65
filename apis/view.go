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

// ErrorView is the serializable shape of an error exposed over the wire.
//
// It deliberately omits the raw input: a rejected prefix may be arbitrary
// user data, and the details already say what was wrong with it.
type ErrorView struct {
	// Code is the kind identifier, or "internal" for errors that do not
	// implement CodedError.
	Code string `json:"code"`
	// Reason is the operation identifier, if recorded.
	Reason string `json:"reason,omitempty"`
	// Message is the human-readable message of the error.
	Message string `json:"message,omitempty"`
	// Details lists structured details.
	Details []Detail `json:"details,omitempty"`
}
