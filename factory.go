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

import "dirpx.dev/typeid/reason"

// Factory builds prefixes from a piece of text, strictly or leniently.
type Factory interface {
	// TryCreate validates the text as-is. It behaves exactly like Parse.
	TryCreate() (Prefix, error)

	// Sanitize canonicalizes the text and returns the result. It never
	// fails; when nothing valid can be formed it returns the empty prefix.
	Sanitize() Prefix
}

// Text is any string-like input a Source accepts.
type Text interface {
	~string | ~[]byte
}

var (
	_ Factory = Source[string]{}
	_ Factory = Source[[]byte]{}
)

// Source is the Factory for one input value.
//
//	p := typeid.From(header.Get("X-Kind")).Sanitize()
//	p, err := typeid.From(raw).TryCreate()
//
// A []byte input is copied when a Prefix is built, so later writes to the
// slice never reach the Prefix.
type Source[T Text] struct {
	value T
	opts  options
}

// From wraps v as a Factory.
func From[T Text](v T, opts ...Option) Source[T] {
	return Source[T]{value: v, opts: buildOptions(opts)}
}

// TryCreate implements Factory.
func (s Source[T]) TryCreate() (Prefix, error) {
	return Parse(string(s.value))
}

// Sanitize implements Factory.
func (s Source[T]) Sanitize() Prefix {
	in := string(s.value)
	return fromCanonical(in, Canonicalize(in), s.opts)
}

// Sanitize is shorthand for From(s, opts...).Sanitize().
func Sanitize(s string, opts ...Option) Prefix {
	return From(s, opts...).Sanitize()
}

// fromCanonical parses canonical and substitutes the empty prefix if it
// does not parse, notifying the observer. Canonicalize output always
// parses; the fallback keeps Sanitize total regardless.
func fromCanonical(input, canonical string, o options) Prefix {
	p, err := Parse(canonical)
	if err == nil {
		return p
	}
	substitute := Prefix{}
	if o.observer != nil {
		ev := Event{
			Input:      input,
			Canonical:  canonical,
			Substitute: substitute,
			Err:        asValidationError(err, reason.Sanitize),
		}
		if ve, ok := err.(*ValidationError); ok {
			ev.Kind = ve.Kind
		}
		o.observer(ev)
	}
	return substitute
}
