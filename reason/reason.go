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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, dot-separated operation identifier.
type Reason string

// MaxLength bounds the length of a non-empty reason.
const MaxLength = 128

// reasonFmt accepts 1 to 4 segments; each segment starts with a lowercase
// letter and continues with lowercase letters, digits or underscores.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned for values that do not match reasonFmt.
	ErrReasonInvalidFormat = errors.New("reason: invalid format")
	// ErrReasonTooLong is returned for values longer than MaxLength.
	ErrReasonTooLong = errors.New("reason: too long")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means no operation was recorded.
var Empty Reason = ""

// Entry points of the typeid module.
const (
	Parse         Reason = "typeid.prefix.parse"
	Sanitize      Reason = "typeid.prefix.sanitize"
	UnmarshalText Reason = "typeid.prefix.unmarshal_text"
	UnmarshalYAML Reason = "typeid.prefix.unmarshal_yaml"
	Scan          Reason = "typeid.prefix.scan"
	FromProto     Reason = "typeid.prefix.from_proto"
)

// Normalize trims spaces, lowercases, and converts "/" to ".". It does not
// guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "/", ".")
}

// Of normalizes and validates s. The empty string yields Empty.
func Of(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// Validate checks r. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns r as a plain string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Of(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength {
		return ErrReasonTooLong
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
