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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical identifier of a prefix validation failure.
//
// It is a distinct type (not just string) so that adapters cannot mix raw
// user input with a known kind. The empty Kind is never valid.
type Kind string

const (
	// kindFmt is the shape every kind identifier must have: lowercase words
	// joined by single underscores. Membership in the declared set is
	// checked separately.
	kindFmt = `^[a-z]+(_[a-z]+)*$`
)

var kindRe = regexp.MustCompile(kindFmt)

var (
	// ErrKindInvalid is returned when a value is not one of the declared kinds.
	ErrKindInvalid = errors.New("kind: invalid kind")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Normalize brings an arbitrary spelling closer to the canonical form:
// surrounding spaces trimmed, lowercased, '-' replaced with '_'.
//
// "Exceeds-Max-Length" becomes "exceeds_max_length". The result still has
// to go through Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes s and returns the matching declared Kind.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate reports whether k is one of the declared kinds.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical identifier.
func (k Kind) String() string {
	return string(k)
}

// Message returns the human-readable description of k.
// Unknown kinds yield an empty string.
func (k Kind) Message() string {
	return messages[k]
}

// MarshalText implements encoding.TextMarshaler. Undeclared kinds are refused.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	if _, ok := messages[Kind(s)]; !ok {
		return ErrKindInvalid
	}
	return nil
}
