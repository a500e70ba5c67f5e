package handlers_test

import (
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

func TestProgressHandler_RecordProgress(t *testing.T) {
	enrollmentID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		authenticated  bool
		setupMock      func(m *svc_mocks.ProgressService)
		expectedStatus int
		expectedBody   string
		expectedCode   string
	}{
		{
			name:          "正常系: 日が進んだ",
			body:          map[string]interface{}{"enrollmentId": enrollmentID.String(), "dayNumber": 3, "actionIndex": 4, "completed": true, "totalActions": 5},
			authenticated: true,
			setupMock: func(m *svc_mocks.ProgressService) {
				m.On("RecordActionCompletion", mock.Anything, testCaller, mock.MatchedBy(func(in model.ActionCompletionInput) bool {
					return in.EnrollmentID == enrollmentID && in.DayNumber == 3 && in.ActionIndex == 4 &&
						in.Completed && in.TotalActions != nil && *in.TotalActions == 5
				})).Return(true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"dayAdvanced":true}`,
		},
		{
			name:          "正常系: actionIndex 0 と totalActions 省略",
			body:          map[string]interface{}{"enrollmentId": enrollmentID.String(), "dayNumber": 1, "actionIndex": 0, "completed": false},
			authenticated: true,
			setupMock: func(m *svc_mocks.ProgressService) {
				m.On("RecordActionCompletion", mock.Anything, testCaller, mock.MatchedBy(func(in model.ActionCompletionInput) bool {
					return in.ActionIndex == 0 && in.TotalActions == nil && !in.Completed
				})).Return(false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"dayAdvanced":false}`,
		},
		{
			name:           "異常系: 未認証",
			body:           map[string]interface{}{"enrollmentId": enrollmentID.String(), "dayNumber": 1, "actionIndex": 0},
			authenticated:  false,
			setupMock:      func(m *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: 不正なJSON",
			body:           `{"enrollmentId":`,
			authenticated:  true,
			setupMock:      func(m *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: dayNumber なし",
			body:           map[string]interface{}{"enrollmentId": enrollmentID.String(), "actionIndex": 0},
			authenticated:  true,
			setupMock:      func(m *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: enrollmentId がUUIDでない",
			body:           map[string]interface{}{"enrollmentId": "abc", "dayNumber": 1, "actionIndex": 0},
			authenticated:  true,
			setupMock:      func(m *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:          "異常系: 過去の日",
			body:          map[string]interface{}{"enrollmentId": enrollmentID.String(), "dayNumber": 1, "actionIndex": 0, "completed": true},
			authenticated: true,
			setupMock: func(m *svc_mocks.ProgressService) {
				m.On("RecordActionCompletion", mock.Anything, testCaller, mock.Anything).
					Return(false, model.NewAppError("DAY_LOCKED", "Past days cannot be modified", "dayNumber", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "DAY_LOCKED",
		},
		{
			name:          "異常系: 存在しない受講",
			body:          map[string]interface{}{"enrollmentId": enrollmentID.String(), "dayNumber": 1, "actionIndex": 0, "completed": true},
			authenticated: true,
			setupMock: func(m *svc_mocks.ProgressService) {
				m.On("RecordActionCompletion", mock.Anything, testCaller, mock.Anything).
					Return(false, model.NewAppError("NOT_FOUND", "Enrollment not found", "enrollmentId", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewProgressService(t)
			tt.setupMock(mockService)
			handler := handlers.NewProgressHandler(mockService)

			req := newJSONRequest(t, http.MethodPost, "/api/v1/progress", tt.body)
			if tt.authenticated {
				req = withCaller(req)
			}
			rr := httptest.NewRecorder()
			handler.RecordProgress(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
			}
		})
	}
}

func TestProgressHandler_SaveResponse(t *testing.T) {
	enrollmentID := uuid.New()
	exerciseID := uuid.New()

	t.Run("正常系: エクササイズへの回答", func(t *testing.T) {
		mockService := svc_mocks.NewProgressService(t)
		mockService.On("RecordTextResponse", mock.Anything, testCaller, mock.MatchedBy(func(in model.TextResponseInput) bool {
			return in.ExerciseID != nil && *in.ExerciseID == exerciseID && in.SectionID == nil && in.ResponseText == "My answer"
		})).Return(&model.ExerciseResponse{ID: uuid.New()}, nil).Once()

		req := withCaller(newJSONRequest(t, http.MethodPost, "/api/v1/responses", map[string]interface{}{
			"enrollmentId": enrollmentID.String(), "exerciseId": exerciseID.String(), "dayNumber": 2, "responseText": "My answer",
		}))
		rr := httptest.NewRecorder()
		handlers.NewProgressHandler(mockService).SaveResponse(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
	})

	t.Run("異常系: サービスが入力エラーを返す", func(t *testing.T) {
		mockService := svc_mocks.NewProgressService(t)
		mockService.On("RecordTextResponse", mock.Anything, testCaller, mock.Anything).
			Return(nil, model.NewAppError("VALIDATION_ERROR", "Exactly one of exerciseId or sectionId is required", "exerciseId", model.ErrInvalidInput)).Once()

		req := withCaller(newJSONRequest(t, http.MethodPost, "/api/v1/responses", map[string]interface{}{
			"enrollmentId": enrollmentID.String(), "dayNumber": 2, "responseText": "x",
		}))
		rr := httptest.NewRecorder()
		handlers.NewProgressHandler(mockService).SaveResponse(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "exerciseId", decodeError(t, rr).Field)
	})
}

func TestProgressHandler_ListResponses(t *testing.T) {
	enrollmentID := uuid.New()

	t.Run("正常系: nil は空配列", func(t *testing.T) {
		mockService := svc_mocks.NewProgressService(t)
		mockService.On("ListResponses", mock.Anything, testCaller, enrollmentID).Return(nil, nil).Once()

		req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/responses?enrollmentId="+enrollmentID.String(), nil))
		rr := httptest.NewRecorder()
		handlers.NewProgressHandler(mockService).ListResponses(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"responses":[]}`, rr.Body.String())
	})

	t.Run("異常系: enrollmentId なし", func(t *testing.T) {
		mockService := svc_mocks.NewProgressService(t)

		req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/responses", nil))
		rr := httptest.NewRecorder()
		handlers.NewProgressHandler(mockService).ListResponses(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
