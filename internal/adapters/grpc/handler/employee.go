package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-employee-shifts/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/employee"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	rpc.UnimplementedEmployeeServiceServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// CreateEmployee は社員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *rpc.CreateEmployeeRequest) (*rpc.CreateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.CreateEmployeeResponse{Employee: toRPCEmployee(created)}, nil
}

// UpdateEmployee は社員情報を更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *rpc.UpdateEmployeeRequest) (*rpc.UpdateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateEmployee(ctx, employee.UpdateEmployeeInput{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.UpdateEmployeeResponse{Employee: toRPCEmployee(updated)}, nil
}

// DeleteEmployee は社員を削除します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *rpc.DeleteEmployeeRequest) (*rpc.DeleteEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: req.ID}); err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.DeleteEmployeeResponse{}, nil
}

// GetEmployee は社員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *rpc.GetEmployeeRequest) (*rpc.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.GetEmployeeResponse{Employee: toRPCEmployee(found)}, nil
}

func toRPCEmployee(emp *employee.Employee) *rpc.Employee {
	if emp == nil {
		return nil
	}

	return &rpc.Employee{
		ID:        emp.ID,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}
}
