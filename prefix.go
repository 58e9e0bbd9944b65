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

package typeid

import (
	"strings"

	"dirpx.dev/typeid/reason"
)

// MaxLength is the maximum length of a prefix in bytes. Since a valid prefix
// is pure ASCII this is also its maximum length in characters.
const MaxLength = 63

// Prefix is a validated TypeID prefix.
//
// The field is unexported: the only ways to obtain a non-zero Prefix are
// Parse, MustParse, Sanitize, a Source, or one of the decoders, all of which
// validate. Prefix values are immutable, comparable with ==, and usable as
// map keys.
type Prefix struct {
	value string
}

// Parse validates s and returns it wrapped as a Prefix.
//
// The stored value is s itself, not a normalized copy. On failure the
// returned error is a *ValidationError and the Prefix is the zero value.
func Parse(s string) (Prefix, error) {
	if k, off := check(s); k != "" {
		return Prefix{}, newValidationError(k, s, off).WithReason(reason.Parse)
	}
	return Prefix{value: s}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level variables:
//
//	var userPrefix = typeid.MustParse("user")
func MustParse(s string) Prefix {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the prefix exactly as stored, without quoting.
func (p Prefix) String() string { return p.value }

// IsZero reports whether p is the empty prefix.
func (p Prefix) IsZero() bool { return p.value == "" }

// Len returns the length of the prefix in bytes.
func (p Prefix) Len() int { return len(p.value) }

// Equal reports whether p and q hold the same prefix.
func (p Prefix) Equal(q Prefix) bool { return p.value == q.value }

// EqualString reports whether p holds exactly s. No normalization is
// applied to s.
func (p Prefix) EqualString(s string) bool { return p.value == s }

// Compare orders prefixes byte-wise, like strings.Compare.
func (p Prefix) Compare(q Prefix) int { return strings.Compare(p.value, q.value) }

// CompareString orders p against a plain string byte-wise.
func (p Prefix) CompareString(s string) int { return strings.Compare(p.value, s) }
