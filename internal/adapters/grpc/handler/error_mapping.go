package handler

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/employee"
	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
)

const unexpectedErrorMessage = "unexpected error"

func toStatusError(err error) error {
	var violation *shift.ViolationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &violation):
		return violationStatus(violation)
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidFirstName),
		errors.Is(err, employee.ErrInvalidLastName):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, unexpectedErrorMessage)
	}
}

// violationStatus は制約違反を gRPC ステータスに変換し、違反したシフトを詳細として添付します。
func violationStatus(v *shift.ViolationError) error {
	var (
		code    codes.Code
		message string
	)
	switch v.Kind {
	case shift.KindEndBeforeOrAtStart:
		code, message = codes.InvalidArgument, shift.ErrEndBeforeOrAtStart.Error()
	case shift.KindEmployeeNotFound:
		code, message = codes.NotFound, shift.ErrEmployeeNotFound.Error()
	case shift.KindOverlappingShifts:
		code, message = codes.AlreadyExists, shift.ErrOverlappingShifts.Error()
	default:
		return status.Error(codes.Internal, unexpectedErrorMessage)
	}

	st := status.New(code, message)
	detail, err := violationDetail(v)
	if err != nil {
		return st.Err()
	}
	withDetails, err := st.WithDetails(detail)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func violationDetail(v *shift.ViolationError) (*structpb.Struct, error) {
	shifts := make([]any, 0, len(v.Shifts))
	for _, s := range v.Shifts {
		shifts = append(shifts, map[string]any{
			"id":          s.ID,
			"employee_id": s.EmployeeID,
			"start_shift": s.StartShift.UTC().Format(time.RFC3339),
			"end_shift":   s.EndShift.UTC().Format(time.RFC3339),
		})
	}
	return structpb.NewStruct(map[string]any{
		"kind":   v.Kind.String(),
		"shifts": shifts,
	})
}
