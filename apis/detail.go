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

// Detail is a transport-friendly description of one problem with the input.
type Detail struct {
	// Type classifies the detail. Prefix errors use "field".
	Type string `json:"type,omitempty"`

	// Field is the logical path of the offending value, e.g. "spec.prefix".
	// Empty when the error was not raised for a named field.
	Field string `json:"field,omitempty"`

	// Reason is the kind identifier, e.g. "invalid_end_character".
	Reason string `json:"reason,omitempty"`

	// Info carries extra facts such as the length limit and the observed
	// length. Values are strings so they survive JSON and proto round trips.
	Info map[string]string `json:"info,omitempty"`
}
