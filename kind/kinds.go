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

package kind

// Declared kinds, listed in the order the validator checks them.
const (
	// ExceedsMaxLength: the input is longer than 63 bytes.
	ExceedsMaxLength Kind = "exceeds_max_length"

	// ContainsInvalidCharacters: the input holds a non-ASCII byte, or a byte
	// outside [a-z_] somewhere between its first and last characters.
	ContainsInvalidCharacters Kind = "contains_invalid_characters"

	// StartsWithUnderscore: the first character is '_'.
	StartsWithUnderscore Kind = "starts_with_underscore"

	// EndsWithUnderscore: the last character is '_'.
	EndsWithUnderscore Kind = "ends_with_underscore"

	// InvalidStartCharacter: the first character is ASCII but not a
	// lowercase letter (uppercase, digit, punctuation, space).
	InvalidStartCharacter Kind = "invalid_start_character"

	// InvalidEndCharacter: the last character is ASCII but not a
	// lowercase letter.
	InvalidEndCharacter Kind = "invalid_end_character"
)

var messages = map[Kind]string{
	ExceedsMaxLength:          "input exceeds 63 characters",
	ContainsInvalidCharacters: "input contains invalid characters: only lowercase ASCII letters and underscores are allowed",
	StartsWithUnderscore:      "input cannot start with an underscore",
	EndsWithUnderscore:        "input cannot end with an underscore",
	InvalidStartCharacter:     "input must start with a lowercase alphabetic character",
	InvalidEndCharacter:       "input must end with a lowercase alphabetic character",
}

// All returns every declared kind in validation order.
func All() []Kind {
	return []Kind{
		ExceedsMaxLength,
		ContainsInvalidCharacters,
		StartsWithUnderscore,
		EndsWithUnderscore,
		InvalidStartCharacter,
		InvalidEndCharacter,
	}
}
