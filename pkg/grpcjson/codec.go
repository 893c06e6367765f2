// Package grpcjson carries gRPC messages as JSON so that services can be
// described with plain Go structs.
//
// It exists so the api/*/v1 packages can be hand-written stand-ins for
// protoc-generated code: no protobuf toolchain is needed to build the module.
// Clients select the codec per call (Invoke does this) and servers follow the
// request's content-subtype, so other clients send application/grpc+json.
package grpcjson

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype clients select with grpc.CallContentSubtype.
const Name = "json"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("grpcjson marshal %T: %w", v, err)
	}
	return b, nil
}

func (codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("grpcjson unmarshal %T: %w", v, err)
	}
	return nil
}

func (codec) Name() string { return Name }

func init() {
	encoding.RegisterCodec(codec{})
}

// CallOption makes a call use this codec.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}

// Unary adapts a typed method of server S into a grpc.MethodHandler.
func Unary[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Invoke performs a unary call with the JSON codec selected.
func Invoke(ctx context.Context, cc grpc.ClientConnInterface, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	return cc.Invoke(ctx, method, in, out, opts...)
}
