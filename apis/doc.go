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

// Package apis defines the small contracts shared by the typeid transport
// adapters.
//
// The root typeid package implements these interfaces on ValidationError;
// grpcx, httpx and adapter consume them. Keeping the contracts here lets the
// adapters handle any error that speaks the same language (a code, an
// optional reason, optional field details) without importing the concrete
// error type.
//
// This package must stay dependency-light: interfaces and plain view types
// only, plus the gRPC codes enum used by Status.
package apis
