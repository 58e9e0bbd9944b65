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

// Package mapper resolves errors into HTTP and gRPC statuses.
//
// A prefix validation error carries a kind (what was wrong with the input)
// and a reason (which entry point rejected it). The same kind can deserve
// different statuses depending on where it surfaced: an invalid prefix in a
// request body is the client's fault (400 / InvalidArgument), while one read
// back from the database means stored data is corrupt (500 / DataLoss).
//
// # Resolution model
//
// For an error implementing apis.CodedError a Mapper resolves, in order:
//
//  1. exact override for the kind;
//  2. deepest reason rule whose pattern is a segment-wise prefix of the
//     error's reason (apis.ReasonedError); "*" matches one segment;
//  3. default for the kind;
//  4. global fallback (500 / codes.Internal).
//
// Errors that do not implement apis.CodedError, or whose code is not a
// declared kind, go straight to the fallback.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.ExceedsMaxLength, http.StatusRequestEntityTooLarge),
//	    mapper.WithReasonStatus("typeid.prefix.unmarshal_yaml", http.StatusUnprocessableEntity, codes.InvalidArgument),
//	    mapper.WithReasonStatus("billing.*", http.StatusUnprocessableEntity, codes.FailedPrecondition),
//	)
//
// All inputs are copied by New; the returned Mapper is immutable and safe
// for concurrent use.
package mapper
