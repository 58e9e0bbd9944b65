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
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirpx.dev/typeid/kind"
)

// allowed marks the bytes that may appear anywhere in a prefix.
var allowed [256]bool

// lower marks the bytes that may open or close a non-empty prefix.
var lower [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		allowed[c] = true
		lower[c] = true
	}
	allowed['_'] = true
}

// check applies the validation rules in order and returns the first kind
// that fails together with the byte offset it refers to. A valid input
// yields ("", -1).
//
// The order is part of the contract: "Invalid_Prefix" must report
// InvalidStartCharacter, not ContainsInvalidCharacters.
func check(s string) (kind.Kind, int) {
	if len(s) > MaxLength {
		return kind.ExceedsMaxLength, MaxLength
	}
	if s == "" {
		return "", -1
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return kind.ContainsInvalidCharacters, i
		}
	}

	last := len(s) - 1
	switch {
	case s[0] == '_':
		return kind.StartsWithUnderscore, 0
	case s[last] == '_':
		return kind.EndsWithUnderscore, last
	case !lower[s[0]]:
		return kind.InvalidStartCharacter, 0
	case !lower[s[last]]:
		return kind.InvalidEndCharacter, last
	}

	for i := 1; i < last; i++ {
		if !allowed[s[i]] {
			return kind.ContainsInvalidCharacters, i
		}
	}
	return "", -1
}

// Canonicalize coerces s into the closest valid prefix. It never fails and
// the result always parses.
//
// Steps, in order:
//
//  1. lowercase with Unicode full case mapping, independent of locale;
//  2. keep at most the first 63 runes;
//  3. drop every byte outside [a-z_] (digits, punctuation, spaces and all
//     non-ASCII runes go here);
//  4. trim leading and trailing '_' (interior runs stay).
//
// Canonicalize is idempotent and leaves valid prefixes unchanged.
func Canonicalize(s string) string {
	s = cases.Lower(language.Und).String(s)
	s = truncateRunes(s, MaxLength)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		// Bytes of multi-byte runes are all >= utf8.RuneSelf and never allowed.
		if allowed[s[i]] {
			b.WriteByte(s[i])
		}
	}
	return strings.Trim(b.String(), "_")
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
