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
	"google.golang.org/grpc/codes"

	"dirpx.dev/typeid/kind"
)

// Option configures a Mapper at build time.
type Option func(*builder)

type builder struct {
	// httpDefaults and grpcDefaults start as the library defaults.
	httpDefaults map[kind.Kind]int
	grpcDefaults map[kind.Kind]codes.Code

	// httpOverride and grpcOverride win over everything else.
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	// reasons holds raw reason rules in option order; New compiles them
	// into a segment trie, so a later rule for the same pattern wins.
	reasons []reasonRule

	// fallbacks for errors with no recognised kind.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// reasonRule applies status to every reason starting with pattern.
type reasonRule struct {
	// pattern is dot-separated and may contain "*" for one segment.
	pattern string
	status  statusPair
}

type statusPair struct {
	http int
	grpc codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[kind.Kind]int),
		grpcDefaults: make(map[kind.Kind]codes.Code),
		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]codes.Code),
		fallbackHTTP: 500,
		fallbackGRPC: codes.Internal,
	}
}

// WithHTTPDefault replaces the default HTTP status for k.
func WithHTTPDefault(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpDefaults[k] = http }
}

// WithGRPCDefault replaces the default gRPC status for k.
func WithGRPCDefault(k kind.Kind, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[k] = grpc }
}

// WithHTTPOverride forces the HTTP status for k, above any reason rule.
func WithHTTPOverride(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpOverride[k] = http }
}

// WithGRPCOverride forces the gRPC status for k, above any reason rule.
func WithGRPCOverride(k kind.Kind, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[k] = grpc }
}

// WithReasonStatus maps every error whose reason starts with pattern to the
// given statuses, unless its kind has an override.
//
// pattern is a dot-separated reason prefix of at most four segments; "*"
// matches exactly one segment. The deepest matching rule wins:
//
//	WithReasonStatus("typeid.prefix", 400, codes.InvalidArgument)     // every entry point
//	WithReasonStatus("typeid.prefix.scan", 500, codes.DataLoss)       // database reads
//	WithReasonStatus("billing.*.create", 422, codes.FailedPrecondition)
//
// The pattern is normalized like a reason (trimmed, lowercased, "/" to ".").
func WithReasonStatus(pattern string, http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.reasons = append(b.reasons, reasonRule{pattern: pattern, status: statusPair{http: http, grpc: grpc}})
	}
}

// WithFallback replaces the status used for errors with no recognised kind.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
