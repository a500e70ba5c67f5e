package service

import (
	"context"
	"testing"
	"time"

	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLabSubmit(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	programID := uuid.New()
	caller := model.Caller{UserID: uuid.New()}
	officeHours := &model.OfficeHours{ID: uuid.New(), ProgramID: programID, ScheduledAt: now.Add(48 * time.Hour)}

	validRequest := func() *model.LabSubmissionRequest {
		return &model.LabSubmissionRequest{
			ProgramID:   programID.String(),
			Category:    "workplace-conflict",
			Title:       "  Disagreement with a peer  ",
			Description: "How should I handle credit for shared work?",
		}
	}

	tests := []struct {
		name      string
		req       func() *model.LabSubmissionRequest
		setup     func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository)
		wantErr   error
		checkResp func(t *testing.T, s *model.LabSubmission)
	}{
		{
			name: "正常系: 次のオフィスアワーに紐づけて作成",
			req:  validRequest,
			setup: func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository) {
				p.On("FindByID", mock.Anything, mock.Anything, programID).Return(&model.Program{ID: programID}, nil).Once()
				e.On("FindActiveByUserAndProgram", mock.Anything, mock.Anything, caller.UserID, programID).Return(&model.Enrollment{ID: uuid.New()}, nil).Once()
				l.On("FindNextScheduledOfficeHours", mock.Anything, mock.Anything, programID, now).Return(officeHours, nil).Once()
				l.On("CreateSubmission", mock.Anything, mock.Anything, mock.MatchedBy(func(s *model.LabSubmission) bool {
					return s.Title == "Disagreement with a peer" && s.UserID == caller.UserID
				})).Return(nil).Once()
			},
			checkResp: func(t *testing.T, s *model.LabSubmission) {
				require.NotNil(t, s.OfficeHoursID)
				assert.Equal(t, officeHours.ID, *s.OfficeHoursID)
				assert.Equal(t, model.LabSubmissionStatusPending, s.Status)
			},
		},
		{
			name: "正常系: 予定がなければ紐づけなし",
			req:  validRequest,
			setup: func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository) {
				p.On("FindByID", mock.Anything, mock.Anything, programID).Return(&model.Program{ID: programID}, nil).Once()
				e.On("FindActiveByUserAndProgram", mock.Anything, mock.Anything, caller.UserID, programID).Return(&model.Enrollment{ID: uuid.New()}, nil).Once()
				l.On("FindNextScheduledOfficeHours", mock.Anything, mock.Anything, programID, now).Return(nil, model.ErrNotFound).Once()
				l.On("CreateSubmission", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			checkResp: func(t *testing.T, s *model.LabSubmission) {
				assert.Nil(t, s.OfficeHoursID)
			},
		},
		{
			name: "異常系: 受講していない",
			req:  validRequest,
			setup: func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository) {
				p.On("FindByID", mock.Anything, mock.Anything, programID).Return(&model.Program{ID: programID}, nil).Once()
				e.On("FindActiveByUserAndProgram", mock.Anything, mock.Anything, caller.UserID, programID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrForbidden,
		},
		{
			name: "異常系: 存在しないプログラム",
			req:  validRequest,
			setup: func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository) {
				p.On("FindByID", mock.Anything, mock.Anything, programID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 不正なカテゴリ",
			req: func() *model.LabSubmissionRequest {
				r := validRequest()
				r.Category = "gossip"
				return r
			},
			setup:   func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository) {},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: 空白だけのタイトル",
			req: func() *model.LabSubmissionRequest {
				r := validRequest()
				r.Title = "   "
				return r
			},
			setup:   func(p *mocks.ProgramRepository, e *mocks.EnrollmentRepository, l *mocks.LabRepository) {},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			programRepo := mocks.NewProgramRepository(t)
			enrollmentRepo := mocks.NewEnrollmentRepository(t)
			labRepo := mocks.NewLabRepository(t)
			tt.setup(programRepo, enrollmentRepo, labRepo)

			s := NewLabService(nil, programRepo, enrollmentRepo, labRepo).(*labService)
			s.now = func() time.Time { return now }

			submission, err := s.Submit(context.Background(), caller, tt.req())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, submission)
				return
			}
			require.NoError(t, err)
			tt.checkResp(t, submission)
		})
	}
}

func TestLabPage(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	program := &model.Program{ID: uuid.New(), Slug: "workforce-ready"}
	caller := model.Caller{UserID: uuid.New()}
	live := &model.OfficeHours{ID: uuid.New(), Status: model.OfficeHoursStatusLive, ScheduledAt: now.Add(-30 * time.Minute)}

	programRepo := mocks.NewProgramRepository(t)
	labRepo := mocks.NewLabRepository(t)
	programRepo.On("FindBySlug", mock.Anything, mock.Anything, program.Slug).Return(program, nil).Once()
	// 開始から2時間以内のセッションも対象
	labRepo.On("FindUpcomingOfficeHours", mock.Anything, mock.Anything, program.ID, now.Add(-2*time.Hour)).Return(live, nil).Once()
	labRepo.On("ListSubmissions", mock.Anything, mock.Anything, caller.UserID, program.ID).
		Return([]*model.LabSubmission{{ID: uuid.New(), Title: "Scenario"}}, nil).Once()

	s := NewLabService(nil, programRepo, mocks.NewEnrollmentRepository(t), labRepo).(*labService)
	s.now = func() time.Time { return now }

	resp, err := s.LabPage(context.Background(), caller, program.Slug)
	require.NoError(t, err)
	assert.Equal(t, program.ID, resp.ProgramID)
	assert.Equal(t, live, resp.NextOfficeHours)
	assert.Len(t, resp.Submissions, 1)
}
