package handlers

import (
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/service"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type LabHandler struct {
	service service.LabService
}

func NewLabHandler(s service.LabService) *LabHandler {
	return &LabHandler{service: s}
}

// Submit は POST /lab-submissions
func (h *LabHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "LabSubmit")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	var req model.LabSubmissionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	submission, err := h.service.Submit(r.Context(), caller, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, model.LabSubmissionResponse{OK: true, Submission: submission}, logger)
}

// LabPage は GET /programs/{slug}/lab
func (h *LabHandler) LabPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	logger := middleware.GetLogger(r.Context()).With("handler", "LabPage", "program_slug", slug)

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.LabPage(r.Context(), caller, slug)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if resp.Submissions == nil {
		resp.Submissions = []*model.LabSubmission{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
