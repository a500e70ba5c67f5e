package handlers

import (
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/service"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := middleware.GetLogger(r.Context()).With("handler", "Overview", "program_slug", slug)

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Overview(r.Context(), caller, slug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *DashboardHandler) Journey(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := middleware.GetLogger(r.Context()).With("handler", "Journey", "program_slug", slug)

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Journey(r.Context(), caller, slug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
