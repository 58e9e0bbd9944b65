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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/typeid/kind"
	"dirpx.dev/typeid/reason"
)

// defaultHTTP maps every kind to 400: a prefix that breaks the rules is
// malformed input wherever it came from.
var defaultHTTP = map[kind.Kind]int{
	kind.ExceedsMaxLength:          http.StatusBadRequest,
	kind.ContainsInvalidCharacters: http.StatusBadRequest,
	kind.StartsWithUnderscore:      http.StatusBadRequest,
	kind.EndsWithUnderscore:        http.StatusBadRequest,
	kind.InvalidStartCharacter:     http.StatusBadRequest,
	kind.InvalidEndCharacter:       http.StatusBadRequest,
}

var defaultGRPC = map[kind.Kind]codes.Code{
	kind.ExceedsMaxLength:          codes.InvalidArgument,
	kind.ContainsInvalidCharacters: codes.InvalidArgument,
	kind.StartsWithUnderscore:      codes.InvalidArgument,
	kind.EndsWithUnderscore:        codes.InvalidArgument,
	kind.InvalidStartCharacter:     codes.InvalidArgument,
	kind.InvalidEndCharacter:       codes.InvalidArgument,
}

// defaultReasons: a prefix rejected while scanning a database row was
// written by us, so the stored data is corrupt rather than the request.
var defaultReasons = []reasonRule{
	{pattern: string(reason.Scan), status: statusPair{http: http.StatusInternalServerError, grpc: codes.DataLoss}},
}
