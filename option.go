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
	"github.com/charmbracelet/log"

	"dirpx.dev/typeid/kind"
)

// Option configures a Source or Sanitize call.
type Option func(*options)

type options struct {
	observer Observer
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Event describes a sanitize call whose canonical form still failed to
// parse, so the empty prefix was substituted.
type Event struct {
	// Kind is the rule the canonical form broke.
	Kind kind.Kind
	// Input is the original input.
	Input string
	// Canonical is the rejected canonical form.
	Canonical string
	// Substitute is the value returned instead. Always the empty prefix.
	Substitute Prefix
	// Err is the parse failure of Canonical, tagged with reason.Sanitize.
	Err error
}

// Observer receives sanitize fallback events. It is never called on the
// success path and its presence never changes the returned value.
type Observer func(Event)

// WithObserver installs fn as the fallback observer. A nil fn disables
// observation.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger reports fallback events to l at warn level. A nil l disables
// observation.
func WithLogger(l *log.Logger) Option {
	return WithObserver(LogObserver(l))
}

// LogObserver adapts a charmbracelet logger into an Observer.
func LogObserver(l *log.Logger) Observer {
	if l == nil {
		return nil
	}
	return func(ev Event) {
		l.Warn("sanitized prefix is invalid, using empty prefix",
			"kind", ev.Kind,
			"canonical", ev.Canonical,
			"input_length", len(ev.Input),
		)
	}
}
