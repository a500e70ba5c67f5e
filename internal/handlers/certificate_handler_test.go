package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tdevakiruba/Workforce/internal/handlers"
	"github.com/tdevakiruba/Workforce/internal/model"
	svc_mocks "github.com/tdevakiruba/Workforce/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCertificateHandler_GetCertificate(t *testing.T) {
	enrollmentID := uuid.New()

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *svc_mocks.CertificateService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "正常系: フェーズ証明書",
			query: "?enrollmentId=" + enrollmentID.String() + "&phase=1",
			setupMock: func(m *svc_mocks.CertificateService) {
				m.On("GetCertificate", mock.Anything, testCaller, enrollmentID, "1").
					Return(&model.Certificate{Type: model.CertificateTypePhase, CredentialID: "TH-WFR-ABCDEF12-1"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: phase なし",
			query:          "?enrollmentId=" + enrollmentID.String(),
			setupMock:      func(m *svc_mocks.CertificateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: UUIDでない受講ID",
			query:          "?enrollmentId=not-a-uuid&phase=1",
			setupMock:      func(m *svc_mocks.CertificateService) {},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:  "異常系: 未取得",
			query: "?enrollmentId=" + enrollmentID.String() + "&phase=program",
			setupMock: func(m *svc_mocks.CertificateService) {
				m.On("GetCertificate", mock.Anything, testCaller, enrollmentID, "program").
					Return(nil, model.NewAppError("NOT_EARNED", "Program not yet completed", "phase", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "NOT_EARNED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewCertificateService(t)
			tt.setupMock(mockService)

			req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/certificate"+tt.query, nil))
			rr := httptest.NewRecorder()
			handlers.NewCertificateHandler(mockService).GetCertificate(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
				return
			}
			var resp model.CertificateResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.NotNil(t, resp.Certificate)
			assert.Equal(t, "TH-WFR-ABCDEF12-1", resp.Certificate.CredentialID)
		})
	}
}

func TestCertificateHandler_ListCertificates(t *testing.T) {
	mockService := svc_mocks.NewCertificateService(t)
	mockService.On("ListCertificates", mock.Anything, testCaller, "workforce-ready").Return(&model.CertificateListResponse{
		CurrentDay: 8,
		Certificates: []model.CertificateSummary{
			{ID: "phase-1", IsEarned: true, PhaseNumber: 1},
			{ID: "program-complete", PhaseNumber: 2},
		},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/programs/workforce-ready/certificates", nil)
	req = withCaller(withURLParam(req, "slug", "workforce-ready"))
	rr := httptest.NewRecorder()
	handlers.NewCertificateHandler(mockService).ListCertificates(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.CertificateListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.CurrentDay)
	assert.Len(t, resp.Certificates, 2)
}
