package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/webutil"
)

// Pinger は *sql.DB が満たす
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health は DB への疎通を確認する (GET /health)
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("Health check failed", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.APIErrorResponse{
			Error: "database unavailable",
			Code:  "UNAVAILABLE",
		}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     config.AppName,
		"version": config.AppVersion,
	}, logger)
}
