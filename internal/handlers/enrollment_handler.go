package handlers

import (
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/service"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type EnrollmentHandler struct {
	service service.EnrollmentService
}

func NewEnrollmentHandler(s service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: s}
}

// Enroll はプログラムへ受講登録する (POST /enroll)
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Enroll")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	var req model.EnrollRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Enroll(r.Context(), caller, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSubscription は最新の購読状態を返す (GET /subscription)
func (h *EnrollmentHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetSubscription")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.GetSubscriptionStatus(r.Context(), caller)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Dashboard は GET /programs/{slug}/dashboard
func (h *EnrollmentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := middleware.GetLogger(r.Context()).With("handler", "Dashboard", "program_slug", slug)

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Dashboard(r.Context(), caller, slug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
