package grpcplugin

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// PluginServer is the server API for the Plugin gRPC service.
//
// Messages are protobuf well-known types so this package does not require a
// protoc/codegen toolchain. Run and RunStream carry CBOR payloads inside
// BytesValue messages.
//
// Proto definition: plugin.proto.
type PluginServer interface {
	Signature(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Run(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	// RunStream receives a CBOR request header followed by raw input chunks.
	RunStream(Plugin_RunStreamServer) error
}

// UnimplementedPluginServer can be embedded to have forward compatible implementations.
type UnimplementedPluginServer struct{}

func (UnimplementedPluginServer) Signature(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Signature not implemented")
}
func (UnimplementedPluginServer) Run(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedPluginServer) RunStream(Plugin_RunStreamServer) error {
	return status.Error(codes.Unimplemented, "method RunStream not implemented")
}

// RegisterPluginServer registers the Plugin service on a gRPC server.
func RegisterPluginServer(s grpc.ServiceRegistrar, srv PluginServer) {
	s.RegisterService(&Plugin_ServiceDesc, srv)
}

// PluginClient is the client API for the Plugin gRPC service.
type PluginClient interface {
	Signature(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Run(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	RunStream(ctx context.Context, opts ...grpc.CallOption) (Plugin_RunStreamClient, error)
}

type pluginClient struct{ cc grpc.ClientConnInterface }

func NewPluginClient(cc grpc.ClientConnInterface) PluginClient { return &pluginClient{cc: cc} }

func (c *pluginClient) Signature(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	err := c.cc.Invoke(ctx, "/xdao.hashes.plugin.v1.Plugin/Signature", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginClient) Run(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.hashes.plugin.v1.Plugin/Run", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginClient) RunStream(ctx context.Context, opts ...grpc.CallOption) (Plugin_RunStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &Plugin_ServiceDesc.Streams[0], "/xdao.hashes.plugin.v1.Plugin/RunStream", opts...)
	if err != nil {
		return nil, err
	}
	return &pluginRunStreamClient{stream}, nil
}

type Plugin_RunStreamClient interface {
	Send(*wrapperspb.BytesValue) error
	CloseAndRecv() (*wrapperspb.BytesValue, error)
	grpc.ClientStream
}

type pluginRunStreamClient struct{ grpc.ClientStream }

func (x *pluginRunStreamClient) Send(m *wrapperspb.BytesValue) error {
	return x.ClientStream.SendMsg(m)
}

func (x *pluginRunStreamClient) CloseAndRecv() (*wrapperspb.BytesValue, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(wrapperspb.BytesValue)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Plugin_RunStreamServer interface {
	SendAndClose(*wrapperspb.BytesValue) error
	Recv() (*wrapperspb.BytesValue, error)
	grpc.ServerStream
}

type pluginRunStreamServer struct{ grpc.ServerStream }

func (x *pluginRunStreamServer) SendAndClose(m *wrapperspb.BytesValue) error {
	return x.ServerStream.SendMsg(m)
}

func (x *pluginRunStreamServer) Recv() (*wrapperspb.BytesValue, error) {
	m := new(wrapperspb.BytesValue)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _Plugin_Signature_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginServer).Signature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.hashes.plugin.v1.Plugin/Signature"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PluginServer).Signature(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Plugin_Run_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginServer).Run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.hashes.plugin.v1.Plugin/Run"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PluginServer).Run(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Plugin_RunStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(PluginServer).RunStream(&pluginRunStreamServer{stream})
}

// Plugin_ServiceDesc is the grpc.ServiceDesc for Plugin service.
var Plugin_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.hashes.plugin.v1.Plugin",
	HandlerType: (*PluginServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Signature", Handler: _Plugin_Signature_Handler},
		{MethodName: "Run", Handler: _Plugin_Run_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "RunStream", Handler: _Plugin_RunStream_Handler, ClientStreams: true},
	},
	Metadata: "plugin.proto",
}
