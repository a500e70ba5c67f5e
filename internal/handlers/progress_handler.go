package handlers

import (
	"net/http"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/service"
	"github.com/tdevakiruba/Workforce/internal/webutil"

	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// RecordProgress はアクションの完了/未完了を記録する (POST /progress)
func (h *ProgressHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "RecordProgress")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	var req model.RecordProgressRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	in := model.ActionCompletionInput{
		EnrollmentID: uuid.MustParse(req.EnrollmentID), // validate:"uuid" 済み
		DayNumber:    *req.DayNumber,
		ActionIndex:  *req.ActionIndex,
		Completed:    req.Completed,
		TotalActions: req.TotalActions,
	}
	dayAdvanced, err := h.service.RecordActionCompletion(r.Context(), caller, in)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.RecordProgressResponse{OK: true, DayAdvanced: dayAdvanced}, logger)
}

// SaveResponse は記述回答を保存する (POST /responses)
func (h *ProgressHandler) SaveResponse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "SaveResponse")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	var req model.SaveResponseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	in := model.TextResponseInput{
		EnrollmentID: uuid.MustParse(req.EnrollmentID),
		DayNumber:    *req.DayNumber,
		ResponseText: req.ResponseText,
	}
	if req.ExerciseID != nil && *req.ExerciseID != "" {
		id := uuid.MustParse(*req.ExerciseID)
		in.ExerciseID = &id
	}
	if req.SectionID != nil && *req.SectionID != "" {
		id := uuid.MustParse(*req.SectionID)
		in.SectionID = &id
	}

	if _, err := h.service.RecordTextResponse(r.Context(), caller, in); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.OKResponse{OK: true}, logger)
}

// ListResponses は受講の記述回答一覧を返す (GET /responses?enrollmentId=)
func (h *ProgressHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ListResponses")

	caller, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	enrollmentID, err := uuid.Parse(r.URL.Query().Get("enrollmentId"))
	if err != nil {
		logger.Warn("Invalid enrollmentId query", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "enrollmentId is required", "enrollmentId", model.ErrInvalidInput))
		return
	}

	responses, err := h.service.ListResponses(r.Context(), caller, enrollmentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if responses == nil {
		responses = []*model.ExerciseResponse{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.ResponsesResponse{Responses: responses}, logger)
}
