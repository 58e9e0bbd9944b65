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

package grpcx

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/typeid"
	"dirpx.dev/typeid/kind"
	"dirpx.dev/typeid/reason"
)

func TestProto_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "user", "api_key"} {
		p := typeid.MustParse(s)
		got, err := FromProto(ToProto(p))
		if err != nil {
			t.Fatalf("FromProto(ToProto(%q)) unexpected error: %v", s, err)
		}
		if got != p {
			t.Fatalf("FromProto(ToProto(%q)) = %q", s, got)
		}
	}
}

func TestFromProto_Nil(t *testing.T) {
	got, err := FromProto(nil)
	if err != nil || !got.IsZero() {
		t.Fatalf("FromProto(nil) = %q, %v; want empty prefix", got, err)
	}
}

func TestFromProto_Invalid(t *testing.T) {
	_, err := FromProto(wrapperspb.String("user_id_"))
	var ve *typeid.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("FromProto error = %v, want *ValidationError", err)
	}
	if ve.Kind != kind.EndsWithUnderscore || ve.Reason != reason.FromProto {
		t.Fatalf("got kind=%q reason=%q", ve.Kind, ve.Reason)
	}
	if !errors.Is(err, typeid.ErrEndsWithUnderscore) {
		t.Fatalf("errors.Is(err, ErrEndsWithUnderscore) = false")
	}
}
