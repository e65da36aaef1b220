// Package grpcjson carries JSON encoded messages over gRPC. The engine and
// console services are declared by hand instead of from protobuf, so their
// messages are plain Go structs and this codec is registered under the
// "json" content subtype.
package grpcjson

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Name is the content subtype the codec is registered under
const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec implements encoding.Codec with encoding/json
type Codec struct{}

// Marshal implements encoding.Codec
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name implements encoding.Codec
func (Codec) Name() string {
	return Name
}

// CallOption selects the JSON codec for a client call
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}

// FullMethod builds the "/service/method" path gRPC routes on
func FullMethod(service, method string) string {
	return fmt.Sprintf("/%s/%s", service, method)
}

// Unary builds a method descriptor for a handler of the form
// func(srv S, ctx, *Req) (*Resp, error). It mirrors what protoc-gen-go-grpc
// emits so interceptors see the same UnaryServerInfo.
func Unary[S any, Req any, Resp any](
	service, method string,
	fn func(srv S, ctx context.Context, req *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := FullMethod(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return fn(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return fn(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
