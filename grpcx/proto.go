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

	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/typeid"
	"dirpx.dev/typeid/reason"
)

// ToProto wraps p for use in a protobuf message field of type
// google.protobuf.StringValue.
func ToProto(p typeid.Prefix) *wrapperspb.StringValue {
	return wrapperspb.String(p.String())
}

// FromProto parses a google.protobuf.StringValue. An unset (nil) value
// yields the empty prefix. Validation errors carry reason.FromProto.
func FromProto(v *wrapperspb.StringValue) (typeid.Prefix, error) {
	p, err := typeid.Parse(v.GetValue())
	if err != nil {
		var ve *typeid.ValidationError
		if errors.As(err, &ve) {
			return typeid.Prefix{}, ve.WithReason(reason.FromProto)
		}
		return typeid.Prefix{}, err
	}
	return p, nil
}
