package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ShiftService_UpsertShifts_FullMethodName = "/shifts.v1.ShiftService/UpsertShifts"
	ShiftService_GetShifts_FullMethodName    = "/shifts.v1.ShiftService/GetShifts"
	ShiftService_FindShifts_FullMethodName   = "/shifts.v1.ShiftService/FindShifts"
	ShiftService_DeleteShifts_FullMethodName = "/shifts.v1.ShiftService/DeleteShifts"
)

// ShiftServiceClient は ShiftService のクライアントです。
type ShiftServiceClient interface {
	UpsertShifts(ctx context.Context, in *UpsertShiftsRequest, opts ...grpc.CallOption) (*UpsertShiftsResponse, error)
	GetShifts(ctx context.Context, in *GetShiftsRequest, opts ...grpc.CallOption) (*GetShiftsResponse, error)
	FindShifts(ctx context.Context, in *FindShiftsRequest, opts ...grpc.CallOption) (*FindShiftsResponse, error)
	DeleteShifts(ctx context.Context, in *DeleteShiftsRequest, opts ...grpc.CallOption) (*DeleteShiftsResponse, error)
}

type shiftServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewShiftServiceClient は JSON コーデックで ShiftService を呼び出すクライアントを生成します。
func NewShiftServiceClient(cc grpc.ClientConnInterface) ShiftServiceClient {
	return &shiftServiceClient{cc}
}

func (c *shiftServiceClient) UpsertShifts(ctx context.Context, in *UpsertShiftsRequest, opts ...grpc.CallOption) (*UpsertShiftsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(UpsertShiftsResponse)
	if err := c.cc.Invoke(ctx, ShiftService_UpsertShifts_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetShifts(ctx context.Context, in *GetShiftsRequest, opts ...grpc.CallOption) (*GetShiftsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(GetShiftsResponse)
	if err := c.cc.Invoke(ctx, ShiftService_GetShifts_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) FindShifts(ctx context.Context, in *FindShiftsRequest, opts ...grpc.CallOption) (*FindShiftsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(FindShiftsResponse)
	if err := c.cc.Invoke(ctx, ShiftService_FindShifts_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) DeleteShifts(ctx context.Context, in *DeleteShiftsRequest, opts ...grpc.CallOption) (*DeleteShiftsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(DeleteShiftsResponse)
	if err := c.cc.Invoke(ctx, ShiftService_DeleteShifts_FullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ShiftServiceServer は ShiftService のサーバー実装が満たすインターフェースです。
type ShiftServiceServer interface {
	UpsertShifts(context.Context, *UpsertShiftsRequest) (*UpsertShiftsResponse, error)
	GetShifts(context.Context, *GetShiftsRequest) (*GetShiftsResponse, error)
	FindShifts(context.Context, *FindShiftsRequest) (*FindShiftsResponse, error)
	DeleteShifts(context.Context, *DeleteShiftsRequest) (*DeleteShiftsResponse, error)
}

// UnimplementedShiftServiceServer は未実装のメソッドに Unimplemented を返します。
type UnimplementedShiftServiceServer struct{}

func (UnimplementedShiftServiceServer) UpsertShifts(context.Context, *UpsertShiftsRequest) (*UpsertShiftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertShifts not implemented")
}

func (UnimplementedShiftServiceServer) GetShifts(context.Context, *GetShiftsRequest) (*GetShiftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShifts not implemented")
}

func (UnimplementedShiftServiceServer) FindShifts(context.Context, *FindShiftsRequest) (*FindShiftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FindShifts not implemented")
}

func (UnimplementedShiftServiceServer) DeleteShifts(context.Context, *DeleteShiftsRequest) (*DeleteShiftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteShifts not implemented")
}

// RegisterShiftServiceServer は ShiftService をサーバーに登録します。
func RegisterShiftServiceServer(s grpc.ServiceRegistrar, srv ShiftServiceServer) {
	s.RegisterService(&ShiftService_ServiceDesc, srv)
}

func _ShiftService_UpsertShifts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpsertShiftsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).UpsertShifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_UpsertShifts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShiftServiceServer).UpsertShifts(ctx, req.(*UpsertShiftsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetShifts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetShiftsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetShifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetShifts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShiftServiceServer).GetShifts(ctx, req.(*GetShiftsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_FindShifts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FindShiftsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).FindShifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_FindShifts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShiftServiceServer).FindShifts(ctx, req.(*FindShiftsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_DeleteShifts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteShiftsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).DeleteShifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_DeleteShifts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShiftServiceServer).DeleteShifts(ctx, req.(*DeleteShiftsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShiftService_ServiceDesc は shifts.v1.ShiftService のサービス定義です。
var ShiftService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shifts.v1.ShiftService",
	HandlerType: (*ShiftServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpsertShifts",
			Handler:    _ShiftService_UpsertShifts_Handler,
		},
		{
			MethodName: "GetShifts",
			Handler:    _ShiftService_GetShifts_Handler,
		},
		{
			MethodName: "FindShifts",
			Handler:    _ShiftService_FindShifts_Handler,
		},
		{
			MethodName: "DeleteShifts",
			Handler:    _ShiftService_DeleteShifts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shifts/v1",
}
