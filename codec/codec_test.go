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

package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/typeid"
)

type entity struct {
	Prefix typeid.Prefix `cbor:"prefix"`
	Count  int           `cbor:"count"`
}

func TestPrefixEncodesAsTextString(t *testing.T) {
	data, err := Marshal(entity{Prefix: typeid.MustParse("user"), Count: 2})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diag, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diag != `{"count": 2, "prefix": "user"}` {
		t.Fatalf("Diagnose = %s", diag)
	}
}

func TestRoundTrip(t *testing.T) {
	in := entity{Prefix: typeid.MustParse("valid_prefix"), Count: 7}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out entity
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}

	again, err := Marshal(out)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(again, data) {
		t.Fatalf("encoding is not deterministic")
	}
}

func TestUnmarshalRejectsInvalidPrefix(t *testing.T) {
	data, err := Marshal(map[string]any{"prefix": "_bad", "count": 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out entity
	err = Unmarshal(data, &out)
	if err == nil {
		t.Fatalf("Unmarshal accepted an invalid prefix")
	}
	if !strings.Contains(err.Error(), "start with an underscore") {
		t.Fatalf("Unmarshal error = %v", err)
	}
	var ve *typeid.ValidationError
	if errors.As(err, &ve) && ve.Kind != "starts_with_underscore" {
		t.Fatalf("unexpected kind %q", ve.Kind)
	}
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, s := range []string{"user", "", "team"} {
		if err := enc.Encode(typeid.MustParse(s)); err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
	}

	dec := NewDecoder(&buf)
	for _, want := range []string{"user", "", "team"} {
		var p typeid.Prefix
		if err := dec.Decode(&p); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !p.EqualString(want) {
			t.Fatalf("Decode = %q, want %q", p, want)
		}
	}
}
