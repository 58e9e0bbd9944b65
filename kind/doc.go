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

// Package kind enumerates the reasons a TypeID prefix can fail validation.
//
// A Kind is the machine-readable half of a typeid.ValidationError: a short,
// stable, snake_case identifier such as "exceeds_max_length" or
// "starts_with_underscore". The set is closed. Parse and Validate reject
// anything that is not one of the declared kinds, so adapters that receive a
// kind over the wire (HTTP bodies, gRPC ErrorInfo) can trust it after parsing.
//
// Every kind carries its own human-readable message (see Message). No two
// kinds share wording, so a log line is unambiguous even when the kind
// identifier itself is not printed.
package kind
