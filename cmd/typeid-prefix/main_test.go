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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
)

// execute runs the root command with args and stdin, returning stdout,
// stderr and the error from Execute.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsage
}

func TestCheck_Args(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "all valid",
			args:     []string{"user", "api_key"},
			wantOut:  "\"user\": ok\n\"api_key\": ok\n",
			wantCode: ExitSuccess,
		},
		{
			name:     "one invalid",
			args:     []string{"user", "_user"},
			wantOut:  "\"user\": ok\n\"_user\": starts_with_underscore:typeid.prefix.parse: input cannot start with an underscore\n",
			wantCode: ExitInvalid,
		},
		{
			name:     "empty prefix is valid",
			args:     []string{""},
			wantOut:  "\"\": ok\n",
			wantCode: ExitSuccess,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, "", append([]string{"check"}, tt.args...)...)
			if got := exitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err=%v)", got, tt.wantCode, err)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestCheck_StdinJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "user\r\nUser\n", "check", "--json")
	if exitCode(err) != ExitInvalid {
		t.Fatalf("exit code = %d, want %d", exitCode(err), ExitInvalid)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSON lines, got %d:\n%s", len(lines), out)
	}

	var first, second checkResult
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 2: %v", err)
	}
	if first.Input != "user" || !first.Valid || first.Error != nil {
		t.Errorf("line 1 = %+v", first)
	}
	if second.Input != "User" || second.Valid || second.Error == nil {
		t.Fatalf("line 2 = %+v", second)
	}
	if second.Error.Code != "invalid_start_character" {
		t.Errorf("line 2 code = %q", second.Error.Code)
	}
}

func TestCheck_VerboseLogsRejections(t *testing.T) {
	t.Parallel()

	_, errOut, _ := execute(t, "", "check", "--verbose", "user_")
	if !strings.Contains(errOut, "typeid-prefix") || !strings.Contains(errOut, "rejected") {
		t.Errorf("stderr = %q, want a debug entry", errOut)
	}
	if !strings.Contains(errOut, "ends_with_underscore") {
		t.Errorf("stderr = %q, want the kind", errOut)
	}

	_, quiet, _ := execute(t, "", "check", "user_")
	if quiet != "" {
		t.Errorf("stderr without --verbose = %q, want empty", quiet)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "sanitize", "Invalid_Prefix123", "_underscores__everywhere__", "🌀", "user")
	if err != nil {
		t.Fatalf("sanitize unexpected error: %v", err)
	}
	want := "invalid_prefix\nunderscores__everywhere\n\nuser\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestSanitize_LongStdinLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("A", 70000)
	out, _, err := execute(t, long+"\nuser\n", "sanitize")
	if err != nil {
		t.Fatalf("sanitize unexpected error: %v", err)
	}
	want := strings.Repeat("a", 63) + "\nuser\n"
	if out != want {
		t.Errorf("stdout has %d bytes, want %d (a 63-byte prefix, then \"user\")", len(out), len(want))
	}
}

func TestInputs_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := inputs(nil, strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("inputs(%q) unexpected error: %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("inputs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_JSONFromStdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "Hello World\nuser\n", "sanitize", "--json")
	if err != nil {
		t.Fatalf("sanitize unexpected error: %v", err)
	}
	want := `{"input":"Hello World","prefix":"helloworld","changed":true}` + "\n" +
		`{"input":"user","prefix":"user","changed":false}` + "\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	e := &ExitError{Code: ExitUsage, Err: inner}
	if e.Error() != "boom" || !errors.Is(e, inner) {
		t.Errorf("ExitError with Err: Error()=%q Is=%v", e.Error(), errors.Is(e, inner))
	}
	if got := (&ExitError{Code: ExitInvalid}).Error(); got != "exit status 1" {
		t.Errorf("ExitError without Err: Error() = %q", got)
	}
}
