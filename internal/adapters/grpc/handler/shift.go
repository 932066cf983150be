package handler

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
)

// ShiftGrpcHandler は ShiftService の gRPC 実装です。
type ShiftGrpcHandler struct {
	svc shift.UseCase
	rpc.UnimplementedShiftServiceServer
}

// NewShiftGrpcHandler は ShiftGrpcHandler を生成します。
func NewShiftGrpcHandler(svc shift.UseCase) *ShiftGrpcHandler {
	return &ShiftGrpcHandler{svc: svc}
}

// UpsertShifts はシフトを一括で登録・更新します。
func (h *ShiftGrpcHandler) UpsertShifts(ctx context.Context, req *rpc.UpsertShiftsRequest) (*rpc.UpsertShiftsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	inputs := make([]shift.ShiftInput, 0, len(req.Shifts))
	for i, s := range req.Shifts {
		if s == nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("shifts[%d] is required", i))
		}
		inputs = append(inputs, shift.ShiftInput{
			ID:         s.ID,
			EmployeeID: s.EmployeeID,
			StartShift: s.StartShift,
			EndShift:   s.EndShift,
		})
	}

	saved, err := h.svc.UpsertShifts(ctx, shift.UpsertShiftsInput{Shifts: inputs})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.UpsertShiftsResponse{Shifts: toRPCShifts(saved)}, nil
}

// GetShifts は ID 指定でシフトを取得します。
func (h *ShiftGrpcHandler) GetShifts(ctx context.Context, req *rpc.GetShiftsRequest) (*rpc.GetShiftsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetShifts(ctx, shift.GetShiftsInput{IDs: req.IDs})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.GetShiftsResponse{Shifts: toRPCShifts(found)}, nil
}

// FindShifts は社員 ID 指定でシフトを検索します。
func (h *ShiftGrpcHandler) FindShifts(ctx context.Context, req *rpc.FindShiftsRequest) (*rpc.FindShiftsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.FindShifts(ctx, shift.FindShiftsInput{EmployeeIDs: req.EmployeeIDs})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.FindShiftsResponse{Shifts: toRPCShifts(found)}, nil
}

// DeleteShifts は ID 指定でシフトを削除します。
func (h *ShiftGrpcHandler) DeleteShifts(ctx context.Context, req *rpc.DeleteShiftsRequest) (*rpc.DeleteShiftsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteShifts(ctx, shift.DeleteShiftsInput{IDs: req.IDs}); err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.DeleteShiftsResponse{}, nil
}

func toRPCShifts(shifts []shift.Shift) []*rpc.Shift {
	out := make([]*rpc.Shift, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, &rpc.Shift{
			ID:         s.ID,
			EmployeeID: s.EmployeeID,
			StartShift: s.StartShift.UTC(),
			EndShift:   s.EndShift.UTC(),
		})
	}
	return out
}
