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

// Package typeid provides a validated representation of the prefix part of
// a TypeID ("user" in "user_2x4y6z8a0b1c2d3e4f5g6h7j8k").
//
// A Prefix can only be obtained through validation, so any function that
// accepts one may rely on the invariant without checking again:
//
//   - at most 63 bytes long;
//   - only lowercase ASCII letters and '_';
//   - when non-empty, it starts and ends with a lowercase letter.
//
// The empty prefix is valid: a TypeID may omit its prefix entirely. The zero
// value Prefix{} is that empty prefix.
//
// # Strict and lenient construction
//
// Parse (and Source.TryCreate) accept the input verbatim or return a
// *ValidationError naming the first rule the input broke. Rules are checked
// in a fixed order so the reported kind is deterministic:
//
//  1. longer than 63 bytes            -> kind.ExceedsMaxLength
//  2. empty                           -> accepted
//  3. any non-ASCII byte              -> kind.ContainsInvalidCharacters
//  4. leading '_'                     -> kind.StartsWithUnderscore
//  5. trailing '_'                    -> kind.EndsWithUnderscore
//  6. first byte not in [a-z]         -> kind.InvalidStartCharacter
//  7. last byte not in [a-z]          -> kind.InvalidEndCharacter
//  8. any byte outside [a-z_]         -> kind.ContainsInvalidCharacters
//
// Canonicalize (and Sanitize, Source.Sanitize) never fail. They lowercase
// the input, keep the first 63 runes, drop everything outside [a-z_] and
// trim underscores from both ends:
//
//	typeid.Canonicalize("Invalid_Prefix123")          // "invalid_prefix"
//	typeid.Canonicalize("_underscores__everywhere__") // "underscores__everywhere"
//	typeid.Sanitize("🌀")                             // Prefix{} (empty)
//
// # Encoding
//
// Prefix implements encoding.TextMarshaler / TextUnmarshaler (and therefore
// JSON), yaml.Marshaler / yaml.Unmarshaler, sql.Scanner and driver.Valuer.
// Every decoder re-runs Parse; none of them will produce a Prefix that
// breaks the invariant.
package typeid
