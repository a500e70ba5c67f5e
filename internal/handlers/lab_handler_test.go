package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tdevakiruba/Workforce/internal/handlers"
	"github.com/tdevakiruba/Workforce/internal/model"
	svc_mocks "github.com/tdevakiruba/Workforce/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLabHandler_Submit(t *testing.T) {
	programID := uuid.New()
	validBody := map[string]string{
		"programId":   programID.String(),
		"category":    "career-challenge",
		"title":       "Negotiating a raise",
		"description": "How do I open the conversation?",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svc_mocks.LabService)
		expectedStatus int
	}{
		{
			name: "正常系: 201で作成",
			body: validBody,
			setupMock: func(m *svc_mocks.LabService) {
				m.On("Submit", mock.Anything, testCaller, mock.AnythingOfType("*model.LabSubmissionRequest")).
					Return(&model.LabSubmission{ID: uuid.New(), Status: model.LabSubmissionStatusPending}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "異常系: 不正なカテゴリ",
			body: map[string]string{
				"programId":   programID.String(),
				"category":    "gossip",
				"title":       "t",
				"description": "d",
			},
			setupMock:      func(m *svc_mocks.LabService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 受講していない",
			body: validBody,
			setupMock: func(m *svc_mocks.LabService) {
				m.On("Submit", mock.Anything, testCaller, mock.Anything).
					Return(nil, model.NewAppError("FORBIDDEN", "An active enrollment is required", "programId", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "異常系: 予期しないエラー",
			body: validBody,
			setupMock: func(m *svc_mocks.LabService) {
				m.On("Submit", mock.Anything, testCaller, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewLabService(t)
			tt.setupMock(mockService)

			req := withCaller(newJSONRequest(t, http.MethodPost, "/api/v1/lab-submissions", tt.body))
			rr := httptest.NewRecorder()
			handlers.NewLabHandler(mockService).Submit(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestLabHandler_LabPage(t *testing.T) {
	mockService := svc_mocks.NewLabService(t)
	programID := uuid.New()
	mockService.On("LabPage", mock.Anything, testCaller, "workforce-ready").
		Return(&model.LabPageResponse{ProgramID: programID}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/programs/workforce-ready/lab", nil)
	req = withCaller(withURLParam(req, "slug", "workforce-ready"))
	rr := httptest.NewRecorder()
	handlers.NewLabHandler(mockService).LabPage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"programId":"`+programID.String()+`","nextOfficeHours":null,"submissions":[]}`, rr.Body.String())
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handlers.NewHealthHandler(stubPinger{}).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	})

	t.Run("異常系: DBに接続できない", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handlers.NewHealthHandler(stubPinger{err: errors.New("connection refused")}).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "UNAVAILABLE", decodeError(t, rr).Code)
	})
}
