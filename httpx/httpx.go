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

// Package httpx writes prefix validation errors as HTTP responses.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"dirpx.dev/typeid"
	"dirpx.dev/typeid/adapter"
	"dirpx.dev/typeid/apis"
)

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Logger, if set, receives one entry per error written: Warn for 4xx,
	// Error for everything else.
	Logger *log.Logger
}

// Write serializes err as an apis.ErrorView JSON object. The HTTP status is
// resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever the error
// exposes through the apis interfaces is written as-is.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err)
	view := adapter.ToView(err)

	if w.Logger != nil {
		kv := append([]any{"status", st.HTTP}, adapter.KeyVals(err)...)
		if st.HTTP < http.StatusInternalServerError {
			w.Logger.Warn("request rejected", kv...)
		} else {
			w.Logger.Error("request failed", kv...)
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(st.HTTP)
	_ = json.NewEncoder(rw).Encode(view)
}

// QueryPrefix parses the query parameter name of r as a prefix. A missing
// parameter yields the empty prefix. Errors are *typeid.ValidationError with
// Field set to name.
func QueryPrefix(r *http.Request, name string) (typeid.Prefix, error) {
	p, err := typeid.Parse(r.URL.Query().Get(name))
	if err != nil {
		var ve *typeid.ValidationError
		if errors.As(err, &ve) {
			return typeid.Prefix{}, ve.WithField(name)
		}
		return typeid.Prefix{}, err
	}
	return p, nil
}
