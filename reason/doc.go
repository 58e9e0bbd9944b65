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

// Package reason names the operation in which a prefix failed validation.
//
// Where a kind answers "what is wrong with the input?", a Reason answers
// "which entry point rejected it?": a direct Parse, a text or YAML decoder,
// a database Scan, a protobuf conversion. Adapters attach a Reason to the
// ValidationError they surface so that logs and API responses can tell a
// malformed config file apart from a malformed RPC field.
//
// Reasons are dot-separated lowercase identifiers of one to four segments,
// e.g. "typeid.prefix.unmarshal_yaml". The zero value is allowed and means
// "not recorded".
package reason
