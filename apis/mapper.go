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

import "google.golang.org/grpc/codes"

// Mapper resolves an error into transport statuses.
//
// Implementations are immutable and safe for concurrent use.
type Mapper interface {
	// Status returns the HTTP and gRPC statuses for err. Errors without a
	// recognised code resolve to the fallback status.
	Status(err error) Status

	// Explain describes which rule produced the status for err.
	Explain(err error) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http status code.
	GRPC codes.Code // gRPC status code.
}
