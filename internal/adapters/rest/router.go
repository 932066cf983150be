// Package rest はシフト API の REST インターフェースを提供します。
package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-employee-shifts/internal/core/shift"
)

// NewRouter は gorilla/mux のルーターを構築し、すべての API ルートを定義します。
func NewRouter(svc shift.UseCase, logger *zap.Logger) *mux.Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	shifts := &ShiftHandler{svc: svc, logger: logger}

	r := mux.NewRouter()
	r.Use(requestLogging(logger))

	r.HandleFunc("/health", health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/shifts", shifts.Upsert).Methods(http.MethodPost)
	api.HandleFunc("/shifts", shifts.List).Methods(http.MethodGet)
	api.HandleFunc("/shifts", shifts.Delete).Methods(http.MethodDelete)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
