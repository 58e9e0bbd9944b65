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

// Package adapter turns errors into their transport-neutral shapes.
package adapter

import (
	"errors"

	"dirpx.dev/typeid/apis"
)

// CodeInternal is the view code of errors that carry no code of their own.
const CodeInternal = "internal"

// ToView converts err into a public ErrorView. It performs no redaction:
// the view holds exactly what err exposes through the apis interfaces.
//
// Code comes from apis.CodedError (CodeInternal if absent), Reason from
// apis.ReasonedError, Message from apis.MessagedError (falling back to
// err.Error()) and Details from apis.DetailedError. Each interface is looked
// up through the wrap chain with errors.As. A nil err yields the zero view.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{Code: CodeInternal, Message: err.Error()}

	var ce apis.CodedError
	if errors.As(err, &ce) && ce.ErrorCode() != "" {
		v.Code = ce.ErrorCode()
	}
	var re apis.ReasonedError
	if errors.As(err, &re) {
		v.Reason = re.ErrorReason()
	}
	var me apis.MessagedError
	if errors.As(err, &me) {
		v.Message = me.ErrorMessage()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

// KeyVals flattens err into alternating key/value pairs for structured
// loggers:
//
//	logger.Error("rejected prefix", adapter.KeyVals(err)...)
func KeyVals(err error) []any {
	if err == nil {
		return nil
	}
	v := ToView(err)
	kv := []any{"code", v.Code}
	if v.Reason != "" {
		kv = append(kv, "reason", v.Reason)
	}
	kv = append(kv, "message", v.Message)
	for _, d := range v.Details {
		if d.Field != "" {
			kv = append(kv, "field", d.Field)
		}
	}
	return kv
}
