package server

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var plansUnavailable = ErrorResponse{
	Error:   "Internal server error",
	Message: "Failed to load plans data",
}

type plansHandler struct {
	source PlanSource
}

func (h *plansHandler) list(w http.ResponseWriter, r *http.Request) {
	log := util.LogContext(r.Context())

	plans, err := h.source.Snapshot()
	if err != nil {
		log.Error("Failed to load plans", util.F("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, plansUnavailable)
		return
	}

	log.Info("Plans requested", util.F("count", len(plans)))
	writeJSON(w, http.StatusOK, plans)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := sonic.Marshal(body)
	if err != nil {
		util.LogErrorf("Failed to encode response: %v", err)
		status = http.StatusInternalServerError
		data, _ = sonic.Marshal(plansUnavailable)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
