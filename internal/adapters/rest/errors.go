package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
)

const (
	codeInvalidStartEndTimes = "SHIFT_INVALID_START_END_TIMES"
	codeEmployeeNotFound     = "SHIFT_EMPLOYEE_NOT_FOUND"
	codeOverlappingShifts    = "SHIFT_OVERLAPPING_SHIFTS"
	codeUnexpectedError      = "UNEXPECTED_ERROR"
	codeInvalidRequest       = "INVALID_REQUEST"
)

// ErrorBody はエラーレスポンスの JSON 表現です。
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Shifts  []ShiftBody `json:"shifts,omitempty"`
}

func (h *ShiftHandler) writeError(w http.ResponseWriter, err error) {
	status, body := toErrorBody(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("shift request failed", zap.Error(err))
	}
	writeJSON(w, status, body)
}

func toErrorBody(err error) (int, ErrorBody) {
	var violation *shift.ViolationError
	if errors.As(err, &violation) {
		return violationBody(violation)
	}
	return http.StatusInternalServerError, ErrorBody{Code: codeUnexpectedError, Message: "unexpected error"}
}

func violationBody(v *shift.ViolationError) (int, ErrorBody) {
	shifts := toShiftBodies(v.Shifts)
	switch v.Kind {
	case shift.KindEndBeforeOrAtStart:
		return http.StatusBadRequest, ErrorBody{
			Code:    codeInvalidStartEndTimes,
			Message: shift.ErrEndBeforeOrAtStart.Error(),
			Shifts:  shifts,
		}
	case shift.KindEmployeeNotFound:
		return http.StatusNotFound, ErrorBody{
			Code:    codeEmployeeNotFound,
			Message: shift.ErrEmployeeNotFound.Error(),
			Shifts:  shifts,
		}
	case shift.KindOverlappingShifts:
		return http.StatusConflict, ErrorBody{
			Code:    codeOverlappingShifts,
			Message: shift.ErrOverlappingShifts.Error(),
			Shifts:  shifts,
		}
	default:
		return http.StatusInternalServerError, ErrorBody{Code: codeUnexpectedError, Message: "unexpected error"}
	}
}

func writeInvalidRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Code: codeInvalidRequest, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
