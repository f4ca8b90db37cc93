package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopcore/billing-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// OpsHandler serves the operational endpoints. Business CRUD lives in the
// storefront API, not in this worker.
type OpsHandler struct {
	logger *slog.Logger
	db     Pinger
}

func NewOpsHandler(logger *slog.Logger, db Pinger) *OpsHandler {
	return &OpsHandler{
		logger: logger.With(slog.String("handler", "ops")),
		db:     db,
	}
}

func (h *OpsHandler) Init(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
}

func (h *OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *OpsHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("readiness check failed", slog.Any("error", err))
		utils.WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	utils.WriteJSON(w, map[string]string{"status": "ready"}, http.StatusOK)
}
