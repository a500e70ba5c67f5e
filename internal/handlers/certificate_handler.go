package handlers

import (
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/service"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CertificateHandler struct {
	service service.CertificateService
}

func NewCertificateHandler(s service.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: s}
}

// GetCertificate は GET /certificate?enrollmentId=&phase=
func (h *CertificateHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetCertificate")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	query := r.URL.Query()
	enrollmentIDStr, phase := query.Get("enrollmentId"), query.Get("phase")
	if enrollmentIDStr == "" || phase == "" {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "Missing parameters", "", model.ErrInvalidInput))
		return
	}
	enrollmentID, err := uuid.Parse(enrollmentIDStr)
	if err != nil {
		// 形式不正の ID は存在しない受講と同じ扱い
		webutil.HandleError(w, logger, model.NewAppError("NOT_FOUND", "Enrollment not found", "enrollmentId", model.ErrNotFound))
		return
	}

	cert, err := h.service.GetCertificate(r.Context(), caller, enrollmentID, phase)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.CertificateResponse{Certificate: cert}, logger)
}

// ListCertificates は GET /programs/{slug}/certificates
func (h *CertificateHandler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := middleware.GetLogger(r.Context()).With("handler", "ListCertificates", "program_slug", slug)

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.ListCertificates(r.Context(), caller, slug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
