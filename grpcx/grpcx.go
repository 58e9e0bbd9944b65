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

// Package grpcx projects prefix validation errors onto gRPC statuses.
package grpcx

import (
	"context"
	"errors"
	"maps"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/typeid/adapter"
	"dirpx.dev/typeid/apis"
)

// Domain is the ErrorInfo domain of every status built by this package.
const Domain = "typeid.dirpx.dev"

// Status converts err into a gRPC status. The code is resolved by m; the
// message is the error's bare message.
//
// Coded errors get two details attached:
//
//   - errdetails.ErrorInfo with Reason set to the upper-cased code, Domain
//     and the recorded operation under metadata "reason";
//   - errdetails.BadRequest with one FieldViolation per field detail.
//
// If the details cannot be attached the status is returned without them.
func Status(err error, m apis.Mapper) *gstatus.Status {
	view := adapter.ToView(err)
	base := gstatus.New(m.Status(err).GRPC, view.Message)
	if view.Code == adapter.CodeInternal {
		return base
	}

	info := &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(view.Code),
		Domain:   Domain,
		Metadata: map[string]string{},
	}
	if view.Reason != "" {
		info.Metadata["reason"] = view.Reason
	}

	br := &errdetails.BadRequest{}
	for _, d := range view.Details {
		if d.Type != "field" {
			continue
		}
		maps.Copy(info.Metadata, d.Info)
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       d.Field,
			Description: view.Message,
			Reason:      strings.ToUpper(d.Reason),
		})
	}

	details := []protoadapt.MessageV1{info}
	if len(br.FieldViolations) > 0 {
		details = append(details, br)
	}
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// coded handler errors (see apis.CodedError) into statuses via Status.
// Other errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ce apis.CodedError
		if !errors.As(err, &ce) {
			// Not ours.
			return nil, err
		}
		return nil, Status(err, m).Err()
	}
}

// ExtractErrorInfo pulls the errdetails.ErrorInfo of this package's Domain
// out of a gRPC error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := fromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// ExtractFieldViolations returns the field violations of a gRPC error, if
// any.
func ExtractFieldViolations(err error) ([]*errdetails.BadRequest_FieldViolation, bool) {
	st, ok := fromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok && len(br.GetFieldViolations()) > 0 {
			return br.GetFieldViolations(), true
		}
	}
	return nil, false
}

func fromError(err error) (*gstatus.Status, bool) {
	if err == nil {
		return nil, false
	}
	return gstatus.FromError(err)
}
