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
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/typeid"
	"dirpx.dev/typeid/apis"
	"dirpx.dev/typeid/kind"
	"dirpx.dev/typeid/reason"
)

func parseErr(t testing.TB, s string) error {
	t.Helper()
	_, err := typeid.Parse(s)
	if err == nil {
		t.Fatalf("Parse(%q) expected error", s)
	}
	return err
}

func scanErr(t testing.TB, s string) error {
	t.Helper()
	var p typeid.Prefix
	err := p.Scan(s)
	if err == nil {
		t.Fatalf("Scan(%q) expected error", s)
	}
	return err
}

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	inputs := []string{
		strings.Repeat("a", typeid.MaxLength+1),
		"user-id",
		"_user",
		"user_",
		"1user",
		"user1",
	}
	for _, in := range inputs {
		st := m.Status(parseErr(t, in))
		if st.HTTP != 400 || st.GRPC != codes.InvalidArgument {
			t.Fatalf("Status(Parse(%q)) got HTTP=%d GRPC=%v; want 400 InvalidArgument", in, st.HTTP, st.GRPC)
		}
	}
}

func TestDefaults_CoverEveryKind(t *testing.T) {
	for _, k := range kind.All() {
		if _, ok := defaultHTTP[k]; !ok {
			t.Fatalf("defaultHTTP has no entry for %q", k)
		}
		if _, ok := defaultGRPC[k]; !ok {
			t.Fatalf("defaultGRPC has no entry for %q", k)
		}
	}
}

func TestReasonRule_Scan(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(scanErr(t, "_user"))
	if st.HTTP != 500 || st.GRPC != codes.DataLoss {
		t.Fatalf("scan failure got HTTP=%d GRPC=%v; want 500 DataLoss", st.HTTP, st.GRPC)
	}
}

func TestPriority_OverrideOverReasonOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.StartsWithUnderscore, 422),
		WithReasonStatus(string(reason.UnmarshalYAML), 415, codes.FailedPrecondition),
		WithHTTPOverride(kind.EndsWithUnderscore, 418),
		WithGRPCOverride(kind.EndsWithUnderscore, codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// default
	if st := m.Status(parseErr(t, "_user")); st.HTTP != 422 || st.GRPC != codes.InvalidArgument {
		t.Fatalf("default: got %+v", st)
	}

	// reason beats default
	var ve *typeid.ValidationError
	if !errors.As(parseErr(t, "_user"), &ve) {
		t.Fatalf("Parse error is not a *ValidationError")
	}
	yamlErr := ve.WithReason(reason.UnmarshalYAML)
	if st := m.Status(yamlErr); st.HTTP != 415 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("reason: got %+v", st)
	}

	// override beats reason
	if !errors.As(parseErr(t, "user_"), &ve) {
		t.Fatalf("Parse error is not a *ValidationError")
	}
	if st := m.Status(ve.WithReason(reason.UnmarshalYAML)); st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override: got %+v", st)
	}
}

func TestReasonRule_LongestPrefix(t *testing.T) {
	m, err := New(WithReasonStatus("typeid.prefix", 422, codes.FailedPrecondition))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// one rule covers every entry point of the module
	if st := m.Status(parseErr(t, "_user")); st.HTTP != 422 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("typeid.prefix.parse: got %+v", st)
	}
	// the deeper default for database reads still wins
	if st := m.Status(scanErr(t, "_user")); st.HTTP != 500 || st.GRPC != codes.DataLoss {
		t.Fatalf("typeid.prefix.scan: got %+v", st)
	}
}

func TestReasonRule_CallerDefinedReason(t *testing.T) {
	m, err := New(
		WithReasonStatus("billing.*.create", 409, codes.Aborted),
		WithReasonStatus("billing", 418, codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var ve *typeid.ValidationError
	if !errors.As(parseErr(t, "Invoice"), &ve) {
		t.Fatalf("Parse error is not a *ValidationError")
	}

	tests := []struct {
		reason   string
		wantHTTP int
		wantGRPC codes.Code
	}{
		{"billing.api.create", 409, codes.Aborted},
		{"billing.worker.create", 409, codes.Aborted},
		{"billing.api.delete", 418, codes.Unavailable},
		{"shipping.api.create", 400, codes.InvalidArgument},
	}
	for _, tt := range tests {
		r, err := reason.Of(tt.reason)
		if err != nil {
			t.Fatalf("reason.Of(%q): %v", tt.reason, err)
		}
		st := m.Status(ve.WithReason(r))
		if st.HTTP != tt.wantHTTP || st.GRPC != tt.wantGRPC {
			t.Fatalf("Status(reason=%q) = %+v, want HTTP=%d GRPC=%v", tt.reason, st, tt.wantHTTP, tt.wantGRPC)
		}
	}

	exp := m.Explain(ve.WithReason("billing.api.create"))
	if !strings.Contains(exp, `http: source=reason pattern="billing.*.create" -> 409`) {
		t.Fatalf("Explain must include the matched pattern:\n%s", exp)
	}
}

func TestReasonRule_OptionReplacesDefault(t *testing.T) {
	m, err := New(WithReasonStatus(" Typeid/Prefix/Scan ", 503, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(scanErr(t, "_user")); st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("normalized pattern must replace the default, got %+v", st)
	}
}

func TestWrappedErrors(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wrapped := fmt.Errorf("load config: %w", scanErr(t, "user_"))
	if st := m.Status(wrapped); st.HTTP != 500 || st.GRPC != codes.DataLoss {
		t.Fatalf("wrapped: got %+v", st)
	}
}

func TestFallback(t *testing.T) {
	m, err := New(WithFallback(503, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, e := range []error{errors.New("boom"), typeid.ErrStartsWithUnderscore, nil} {
		if st := m.Status(e); st.HTTP != 503 || st.GRPC != codes.Unavailable {
			t.Fatalf("Status(%v) = %+v, want fallback", e, st)
		}
	}
}

func TestNew_RejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"http default", WithHTTPDefault("bogus", 400)},
		{"grpc default", WithGRPCDefault("bogus", codes.InvalidArgument)},
		{"http override", WithHTTPOverride("Starts_With_Underscore", 400)},
		{"grpc override", WithGRPCOverride("", codes.InvalidArgument)},
		{"empty pattern", WithReasonStatus("", 400, codes.InvalidArgument)},
		{"empty segment", WithReasonStatus("typeid..scan", 400, codes.InvalidArgument)},
		{"only wildcards", WithReasonStatus("*.*", 400, codes.InvalidArgument)},
		{"too deep", WithReasonStatus("a.b.c.d.e", 400, codes.InvalidArgument)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("New(%s) expected error", tt.name)
			}
		})
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithGRPCOverride(kind.InvalidEndCharacter, codes.OutOfRange))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(parseErr(t, "user1"))
	if !strings.Contains(exp, `kind="invalid_end_character"`) {
		t.Fatalf("Explain must include the kind:\n%s", exp)
	}
	if !strings.Contains(exp, "http: source=default -> 400") {
		t.Fatalf("Explain must report the HTTP default:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=override -> OUTOFRANGE(11)") {
		t.Fatalf("Explain must report the gRPC override:\n%s", exp)
	}
}

func TestOptions_DoNotLeakAfterNew(t *testing.T) {
	opt := WithHTTPOverride(kind.InvalidStartCharacter, 418)
	m1, err := New(opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m2, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e := parseErr(t, "9user")
	if m1.Status(e).HTTP != 418 {
		t.Fatalf("m1 must use the override")
	}
	if m2.Status(e).HTTP != 400 {
		t.Fatalf("m2 must not see m1's override")
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(kind.EndsWithUnderscore, 408))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	errs := []error{parseErr(t, "_a"), parseErr(t, "a_"), scanErr(t, "A"), errors.New("x")}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				for _, e := range errs {
					_ = m.Status(e)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	e := parseErr(b, "_user")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(e)
	}
}

func BenchmarkMapperStatus_Fallback(b *testing.B) {
	m, _ := New()
	e := errors.New("boom")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(e)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
