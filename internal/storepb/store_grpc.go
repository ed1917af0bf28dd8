package storepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// This file is the hand-written equivalent of what protoc-gen-go-grpc
// would emit from api/store.proto: client stub, server interface, and
// grpc.ServiceDesc (see wire.go for the message codec half).

const storeServiceName = "store.Store"

// StoreClient is the client API for the Store service.
type StoreClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	ListKeyspaces(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListKeyspacesResponse, error)
	GetKeyspace(ctx context.Context, in *KeyspaceNameRequest, opts ...grpc.CallOption) (*Keyspace, error)
	CreateKeyspace(ctx context.Context, in *Keyspace, opts ...grpc.CallOption) (*Empty, error)
	DeleteKeyspace(ctx context.Context, in *KeyspaceNameRequest, opts ...grpc.CallOption) (*Empty, error)
	TruncateKeyspace(ctx context.Context, in *KeyspaceNameRequest, opts ...grpc.CallOption) (*Empty, error)
	GetKey(ctx context.Context, in *GetKeyRequest, opts ...grpc.CallOption) (*Record, error)
	InsertKey(ctx context.Context, in *InsertKeyRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteKey(ctx context.Context, in *DeleteKeyRequest, opts ...grpc.CallOption) (*Empty, error)
	InsertKeys(ctx context.Context, in *InsertKeysRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteKeys(ctx context.Context, in *DeleteKeysRequest, opts ...grpc.CallOption) (*Empty, error)
	GetKeys(ctx context.Context, in *GetKeysRequest, opts ...grpc.CallOption) (Store_GetKeysClient, error)
	Nodes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NodesResponse, error)
}

type storeClient struct {
	cc grpc.ClientConnInterface
}

// NewStoreClient constructs a StoreClient over cc.
func NewStoreClient(cc grpc.ClientConnInterface) StoreClient {
	return &storeClient{cc: cc}
}

func (c *storeClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/Ping", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) ListKeyspaces(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListKeyspacesResponse, error) {
	out := new(ListKeyspacesResponse)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/ListKeyspaces", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) GetKeyspace(ctx context.Context, in *KeyspaceNameRequest, opts ...grpc.CallOption) (*Keyspace, error) {
	out := new(Keyspace)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/GetKeyspace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) CreateKeyspace(ctx context.Context, in *Keyspace, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/CreateKeyspace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) DeleteKeyspace(ctx context.Context, in *KeyspaceNameRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/DeleteKeyspace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) TruncateKeyspace(ctx context.Context, in *KeyspaceNameRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/TruncateKeyspace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) GetKey(ctx context.Context, in *GetKeyRequest, opts ...grpc.CallOption) (*Record, error) {
	out := new(Record)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/GetKey", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) InsertKey(ctx context.Context, in *InsertKeyRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/InsertKey", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) DeleteKey(ctx context.Context, in *DeleteKeyRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/DeleteKey", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) InsertKeys(ctx context.Context, in *InsertKeysRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/InsertKeys", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) DeleteKeys(ctx context.Context, in *DeleteKeysRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/DeleteKeys", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) Nodes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NodesResponse, error) {
	out := new(NodesResponse)
	if err := c.cc.Invoke(ctx, "/"+storeServiceName+"/Nodes", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Store_GetKeysClient is the client-side stream handle for the
// GetKeys server-streaming RPC.
type Store_GetKeysClient interface {
	Recv() (*Record, error)
	grpc.ClientStream
}

func (c *storeClient) GetKeys(ctx context.Context, in *GetKeysRequest, opts ...grpc.CallOption) (Store_GetKeysClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Store_serviceDesc.Streams[0], "/"+storeServiceName+"/GetKeys", opts...)
	if err != nil {
		return nil, err
	}
	x := &storeGetKeysClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type storeGetKeysClient struct {
	grpc.ClientStream
}

func (x *storeGetKeysClient) Recv() (*Record, error) {
	m := new(Record)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// StoreServer is the server API for the Store service.
type StoreServer interface {
	Ping(context.Context, *Empty) (*Empty, error)
	ListKeyspaces(context.Context, *Empty) (*ListKeyspacesResponse, error)
	GetKeyspace(context.Context, *KeyspaceNameRequest) (*Keyspace, error)
	CreateKeyspace(context.Context, *Keyspace) (*Empty, error)
	DeleteKeyspace(context.Context, *KeyspaceNameRequest) (*Empty, error)
	TruncateKeyspace(context.Context, *KeyspaceNameRequest) (*Empty, error)
	GetKey(context.Context, *GetKeyRequest) (*Record, error)
	InsertKey(context.Context, *InsertKeyRequest) (*Empty, error)
	DeleteKey(context.Context, *DeleteKeyRequest) (*Empty, error)
	InsertKeys(context.Context, *InsertKeysRequest) (*Empty, error)
	DeleteKeys(context.Context, *DeleteKeysRequest) (*Empty, error)
	GetKeys(*GetKeysRequest, Store_GetKeysServer) error
	Nodes(context.Context, *Empty) (*NodesResponse, error)
}

// UnimplementedStoreServer can be embedded for forward compatibility:
// it satisfies StoreServer with codes.Unimplemented stubs, so adding
// a method to the interface doesn't break existing implementations
// that embed it (the same convention protoc-gen-go-grpc uses).
type UnimplementedStoreServer struct{}

func (UnimplementedStoreServer) Ping(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedStoreServer) ListKeyspaces(context.Context, *Empty) (*ListKeyspacesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListKeyspaces not implemented")
}
func (UnimplementedStoreServer) GetKeyspace(context.Context, *KeyspaceNameRequest) (*Keyspace, error) {
	return nil, status.Error(codes.Unimplemented, "method GetKeyspace not implemented")
}
func (UnimplementedStoreServer) CreateKeyspace(context.Context, *Keyspace) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateKeyspace not implemented")
}
func (UnimplementedStoreServer) DeleteKeyspace(context.Context, *KeyspaceNameRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteKeyspace not implemented")
}
func (UnimplementedStoreServer) TruncateKeyspace(context.Context, *KeyspaceNameRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method TruncateKeyspace not implemented")
}
func (UnimplementedStoreServer) GetKey(context.Context, *GetKeyRequest) (*Record, error) {
	return nil, status.Error(codes.Unimplemented, "method GetKey not implemented")
}
func (UnimplementedStoreServer) InsertKey(context.Context, *InsertKeyRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method InsertKey not implemented")
}
func (UnimplementedStoreServer) DeleteKey(context.Context, *DeleteKeyRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteKey not implemented")
}
func (UnimplementedStoreServer) InsertKeys(context.Context, *InsertKeysRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method InsertKeys not implemented")
}
func (UnimplementedStoreServer) DeleteKeys(context.Context, *DeleteKeysRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteKeys not implemented")
}
func (UnimplementedStoreServer) GetKeys(*GetKeysRequest, Store_GetKeysServer) error {
	return status.Error(codes.Unimplemented, "method GetKeys not implemented")
}
func (UnimplementedStoreServer) Nodes(context.Context, *Empty) (*NodesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Nodes not implemented")
}

// RegisterStoreServer registers srv with s.
func RegisterStoreServer(s grpc.ServiceRegistrar, srv StoreServer) {
	s.RegisterService(&_Store_serviceDesc, srv)
}

func _Store_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/Ping"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).Ping(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_ListKeyspaces_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).ListKeyspaces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/ListKeyspaces"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).ListKeyspaces(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_GetKeyspace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeyspaceNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).GetKeyspace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/GetKeyspace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).GetKeyspace(ctx, req.(*KeyspaceNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_CreateKeyspace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Keyspace)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).CreateKeyspace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/CreateKeyspace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).CreateKeyspace(ctx, req.(*Keyspace))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_DeleteKeyspace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeyspaceNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).DeleteKeyspace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/DeleteKeyspace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).DeleteKeyspace(ctx, req.(*KeyspaceNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_TruncateKeyspace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KeyspaceNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).TruncateKeyspace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/TruncateKeyspace"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).TruncateKeyspace(ctx, req.(*KeyspaceNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_GetKey_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).GetKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/GetKey"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).GetKey(ctx, req.(*GetKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_InsertKey_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InsertKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).InsertKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/InsertKey"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).InsertKey(ctx, req.(*InsertKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_DeleteKey_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).DeleteKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/DeleteKey"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).DeleteKey(ctx, req.(*DeleteKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_InsertKeys_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InsertKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).InsertKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/InsertKeys"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).InsertKeys(ctx, req.(*InsertKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_DeleteKeys_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteKeysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).DeleteKeys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/DeleteKeys"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).DeleteKeys(ctx, req.(*DeleteKeysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Store_Nodes_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StoreServer).Nodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + storeServiceName + "/Nodes"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StoreServer).Nodes(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Store_GetKeysServer is the server-side stream handle for GetKeys.
type Store_GetKeysServer interface {
	Send(*Record) error
	grpc.ServerStream
}

type storeGetKeysServer struct {
	grpc.ServerStream
}

func (x *storeGetKeysServer) Send(m *Record) error {
	return x.ServerStream.SendMsg(m)
}

func _Store_GetKeys_Handler(srv any, stream grpc.ServerStream) error {
	in := new(GetKeysRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(StoreServer).GetKeys(in, &storeGetKeysServer{stream})
}

var _Store_serviceDesc = grpc.ServiceDesc{
	ServiceName: storeServiceName,
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _Store_Ping_Handler},
		{MethodName: "ListKeyspaces", Handler: _Store_ListKeyspaces_Handler},
		{MethodName: "GetKeyspace", Handler: _Store_GetKeyspace_Handler},
		{MethodName: "CreateKeyspace", Handler: _Store_CreateKeyspace_Handler},
		{MethodName: "DeleteKeyspace", Handler: _Store_DeleteKeyspace_Handler},
		{MethodName: "TruncateKeyspace", Handler: _Store_TruncateKeyspace_Handler},
		{MethodName: "GetKey", Handler: _Store_GetKey_Handler},
		{MethodName: "InsertKey", Handler: _Store_InsertKey_Handler},
		{MethodName: "DeleteKey", Handler: _Store_DeleteKey_Handler},
		{MethodName: "InsertKeys", Handler: _Store_InsertKeys_Handler},
		{MethodName: "DeleteKeys", Handler: _Store_DeleteKeys_Handler},
		{MethodName: "Nodes", Handler: _Store_Nodes_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetKeys",
			Handler:       _Store_GetKeys_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "store.proto",
}
