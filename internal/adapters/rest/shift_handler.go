package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
)

// ShiftHandler は /api/v1/shifts を処理します。
type ShiftHandler struct {
	svc    shift.UseCase
	logger *zap.Logger
}

// ShiftBody はシフトの JSON 表現です。id を省略すると新規作成になります。
type ShiftBody struct {
	ID         int64     `json:"id,omitempty"`
	EmployeeID int64     `json:"employeeId"`
	StartShift time.Time `json:"startShift"`
	EndShift   time.Time `json:"endShift"`
}

// Upsert はリクエストボディのシフト配列を一括で登録・更新します。
func (h *ShiftHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var body []ShiftBody
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeInvalidRequest(w, "invalid request body")
		return
	}

	inputs := make([]shift.ShiftInput, 0, len(body))
	for _, b := range body {
		inputs = append(inputs, shift.ShiftInput{
			ID:         b.ID,
			EmployeeID: b.EmployeeID,
			StartShift: b.StartShift,
			EndShift:   b.EndShift,
		})
	}

	saved, err := h.svc.UpsertShifts(r.Context(), shift.UpsertShiftsInput{Shifts: inputs})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toShiftBodies(saved))
}

// List は ids が指定されれば ID で、そうでなければ employee_ids でシフトを取得します。
func (h *ShiftHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		found []shift.Shift
		err   error
	)
	if query.Has("ids") {
		ids, perr := parseIDs(query.Get("ids"))
		if perr != nil {
			writeInvalidRequest(w, perr.Error())
			return
		}
		found, err = h.svc.GetShifts(r.Context(), shift.GetShiftsInput{IDs: ids})
	} else {
		ids, perr := parseIDs(query.Get("employee_ids"))
		if perr != nil {
			writeInvalidRequest(w, perr.Error())
			return
		}
		found, err = h.svc.FindShifts(r.Context(), shift.FindShiftsInput{EmployeeIDs: ids})
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toShiftBodies(found))
}

// Delete は ids で指定したシフトを削除します。存在しない ID は無視されます。
func (h *ShiftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		writeInvalidRequest(w, err.Error())
		return
	}

	if err := h.svc.DeleteShifts(r.Context(), shift.DeleteShiftsInput{IDs: ids}); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// parseIDs はカンマ区切りの ID リストを解釈します。空文字列は空のリストです。
func parseIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return []int64{}, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toShiftBodies(shifts []shift.Shift) []ShiftBody {
	out := make([]ShiftBody, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, ShiftBody{
			ID:         s.ID,
			EmployeeID: s.EmployeeID,
			StartShift: s.StartShift.UTC(),
			EndShift:   s.EndShift.UTC(),
		})
	}
	return out
}
