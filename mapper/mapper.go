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
	"errors"
	"fmt"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/typeid/apis"
	"dirpx.dev/typeid/kind"
	"dirpx.dev/typeid/mapper/internal/segmenttrie"
	"dirpx.dev/typeid/reason"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting mapper is safe for concurrent use and keeps no reference to
// package-level defaults or to anything passed in through options.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (per-kind HTTP and gRPC
//     statuses, and the reason rule for database reads).
//  2. Apply user-provided options in order.
//  3. Validate every kind named by a default or override against the
//     declared taxonomy (kind.Validate).
//  4. Normalize each reason pattern (reason.Normalize) and compile all of
//     them into one segment trie supporting longest-prefix match with '*'
//     as a single-segment wildcard.
//  5. Freeze the maps into fresh copies.
//
// Errors returned from this function name the offending kind or pattern.
func New(opts ...Option) (apis.Mapper, error) {
	// (1) Defaults, copied so options cannot mutate package state.
	b := newBuilder()
	maps.Copy(b.httpDefaults, defaultHTTP)
	maps.Copy(b.grpcDefaults, defaultGRPC)
	b.reasons = append(b.reasons, defaultReasons...)

	// (2) Options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Kinds.
	for _, m := range []map[kind.Kind]int{b.httpDefaults, b.httpOverride} {
		for k := range m {
			if err := kind.Validate(k); err != nil {
				return nil, fmt.Errorf("mapper: HTTP rule for %q: %w", k, err)
			}
		}
	}
	for _, m := range []map[kind.Kind]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for k := range m {
			if err := kind.Validate(k); err != nil {
				return nil, fmt.Errorf("mapper: gRPC rule for %q: %w", k, err)
			}
		}
	}

	// (4) Reason trie. Later rules for the same pattern replace earlier
	// ones, so options override the defaults.
	trie := segmenttrie.New[statusPair]()
	for _, rule := range b.reasons {
		pattern := reason.Normalize(rule.pattern)
		if err := trie.Insert(pattern, rule.status); err != nil {
			return nil, fmt.Errorf("mapper: reason rule %q: %w", rule.pattern, err)
		}
	}

	// (5) Freeze.
	return &mapper{
		httpDefault:  maps.Clone(b.httpDefaults),
		grpcDefault:  maps.Clone(b.grpcDefaults),
		httpOverride: maps.Clone(b.httpOverride),
		grpcOverride: maps.Clone(b.grpcOverride),
		reasons:      trie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper is the frozen result of New. Nothing is written after
// construction; all lookups are reads.
type mapper struct {
	httpDefault  map[kind.Kind]int
	grpcDefault  map[kind.Kind]codes.Code
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	// reasons resolves a reason to the status of its deepest matching rule.
	reasons *segmenttrie.Trie[statusPair]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// classify extracts the kind and reason of err by walking its wrap chain.
//
// ok is false when no error in the chain implements apis.CodedError, or
// when its code is not a declared kind; such errors resolve to the
// fallback. The reason is empty when no error implements
// apis.ReasonedError.
func classify(err error) (k kind.Kind, r reason.Reason, ok bool) {
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		return "", "", false
	}
	k = kind.Kind(ce.ErrorCode())
	if kind.Validate(k) != nil {
		return "", "", false
	}
	var re apis.ReasonedError
	if errors.As(err, &re) {
		r = reason.Reason(re.ErrorReason())
	}
	return k, r, true
}

// Status implements apis.Mapper. HTTP and gRPC are resolved independently,
// so an override for one transport leaves the other on its own tiers.
func (m *mapper) Status(err error) apis.Status {
	k, r, ok := classify(err)
	_, _, h := m.resolveHTTP(k, r, ok)
	_, _, g := m.resolveGRPC(k, r, ok)
	return apis.Status{HTTP: h, GRPC: g}
}

// resolveHTTP walks the tiers in priority order:
//
//  1. exact override for k;
//  2. deepest reason rule matching r;
//  3. default for k;
//  4. fallback.
//
// source names the tier that answered and pattern the matched reason rule,
// both for Explain.
func (m *mapper) resolveHTTP(k kind.Kind, r reason.Reason, ok bool) (source, pattern string, status int) {
	if !ok {
		return "fallback", "", m.fallbackHTTP
	}
	if v, ok := m.httpOverride[k]; ok {
		return "override", "", v
	}
	if v, pat, ok := m.reasons.Match(string(r)); ok {
		return "reason", pat, v.http
	}
	if v, ok := m.httpDefault[k]; ok {
		return "default", "", v
	}
	return "fallback", "", m.fallbackHTTP
}

// resolveGRPC mirrors resolveHTTP for gRPC codes.
func (m *mapper) resolveGRPC(k kind.Kind, r reason.Reason, ok bool) (source, pattern string, status codes.Code) {
	if !ok {
		return "fallback", "", m.fallbackGRPC
	}
	if v, ok := m.grpcOverride[k]; ok {
		return "override", "", v
	}
	if v, pat, ok := m.reasons.Match(string(r)); ok {
		return "reason", pat, v.grpc
	}
	if v, ok := m.grpcDefault[k]; ok {
		return "default", "", v
	}
	return "fallback", "", m.fallbackGRPC
}

// Explain renders a human-readable trace of how err was resolved, one line
// for the classification and one per transport:
//
//	kind="starts_with_underscore" reason="typeid.prefix.scan"
//	http: source=reason pattern="typeid.prefix.scan" -> 500
//	grpc: source=reason pattern="typeid.prefix.scan" -> DATALOSS(15)
//
// The pattern is shown only when a reason rule answered. The format is
// stable and covered by a golden file.
func (m *mapper) Explain(err error) string {
	k, r, ok := classify(err)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q reason=%q\n", k, r)

	src, pat, h := m.resolveHTTP(k, r, ok)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", src, patternAttr(pat), h)

	src, pat, g := m.resolveGRPC(k, r, ok)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", src, patternAttr(pat), strings.ToUpper(g.String()), int(g))

	return b.String()
}

func patternAttr(pattern string) string {
	if pattern == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", pattern)
}
