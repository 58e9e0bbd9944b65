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
	"errors"
	"fmt"
	"strconv"

	"dirpx.dev/typeid/apis"
	"dirpx.dev/typeid/kind"
	"dirpx.dev/typeid/reason"
)

// Sentinel errors, one per kind. Every *ValidationError unwraps to the
// sentinel of its Kind, so callers can branch with errors.Is:
//
//	if errors.Is(err, typeid.ErrStartsWithUnderscore) { ... }
var (
	ErrExceedsMaxLength          = newSentinel(kind.ExceedsMaxLength)
	ErrContainsInvalidCharacters = newSentinel(kind.ContainsInvalidCharacters)
	ErrStartsWithUnderscore      = newSentinel(kind.StartsWithUnderscore)
	ErrEndsWithUnderscore        = newSentinel(kind.EndsWithUnderscore)
	ErrInvalidStartCharacter     = newSentinel(kind.InvalidStartCharacter)
	ErrInvalidEndCharacter       = newSentinel(kind.InvalidEndCharacter)
)

var sentinels = map[kind.Kind]error{
	kind.ExceedsMaxLength:          ErrExceedsMaxLength,
	kind.ContainsInvalidCharacters: ErrContainsInvalidCharacters,
	kind.StartsWithUnderscore:      ErrStartsWithUnderscore,
	kind.EndsWithUnderscore:        ErrEndsWithUnderscore,
	kind.InvalidStartCharacter:     ErrInvalidStartCharacter,
	kind.InvalidEndCharacter:       ErrInvalidEndCharacter,
}

func newSentinel(k kind.Kind) error {
	return errors.New("typeid: " + k.Message())
}

var (
	_ apis.CodedError    = (*ValidationError)(nil)
	_ apis.ReasonedError = (*ValidationError)(nil)
	_ apis.DetailedError = (*ValidationError)(nil)
	_ apis.MessagedError = (*ValidationError)(nil)
)

// ValidationError reports why an input is not a valid prefix.
//
// WithX helpers return a shallow copy, so a ValidationError can be shared
// and refined by adapters without affecting other holders.
type ValidationError struct {
	// Kind is the first rule the input broke. Always one of kind.All().
	Kind kind.Kind

	// Reason records which entry point rejected the input. Parse sets
	// reason.Parse; decoders replace it with their own.
	Reason reason.Reason

	// Field is the logical name of the decoded value (e.g. "spec.prefix"),
	// if the caller supplied one.
	Field string

	// Input is the rejected value.
	Input string

	// Offset is the byte offset the kind refers to: the first offending
	// byte, or MaxLength for ExceedsMaxLength.
	Offset int
}

func newValidationError(k kind.Kind, input string, offset int) *ValidationError {
	return &ValidationError{Kind: k, Input: input, Offset: offset}
}

// Error formats the error as
//
//	<kind>: <message>
//
// or, when Reason is present,
//
//	<kind>:<reason>: <message>
//
// with "<field>: " in front of the message when Field is set. The raw input
// is not included.
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.ErrorMessage()
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Kind, e.Reason, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap returns the sentinel error of e.Kind.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return sentinels[e.Kind]
}

// WithReason returns a copy of e with Reason replaced.
func (e *ValidationError) WithReason(r reason.Reason) *ValidationError {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithField returns a copy of e with Field replaced.
func (e *ValidationError) WithField(field string) *ValidationError {
	cp := *e
	cp.Field = field
	return &cp
}

// ErrorCode implements apis.CodedError.
func (e *ValidationError) ErrorCode() string { return string(e.Kind) }

// ErrorReason implements apis.ReasonedError.
func (e *ValidationError) ErrorReason() string { return string(e.Reason) }

// ErrorMessage implements apis.MessagedError: the kind's message, preceded
// by "<field>: " when Field is set.
func (e *ValidationError) ErrorMessage() string {
	if e.Field != "" {
		return e.Field + ": " + e.Kind.Message()
	}
	return e.Kind.Message()
}

// ErrorDetails implements apis.DetailedError with a single field detail.
func (e *ValidationError) ErrorDetails() []apis.Detail {
	info := map[string]string{
		"length": strconv.Itoa(len(e.Input)),
	}
	if e.Kind == kind.ExceedsMaxLength {
		info["max_length"] = strconv.Itoa(MaxLength)
	} else {
		info["offset"] = strconv.Itoa(e.Offset)
	}
	return []apis.Detail{{
		Type:   "field",
		Field:  e.Field,
		Reason: string(e.Kind),
		Info:   info,
	}}
}

// asValidationError re-labels a *ValidationError with r. Other errors pass
// through unchanged.
func asValidationError(err error, r reason.Reason) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.WithReason(r)
	}
	return err
}
