//go:generate mockery --name LabService --output ./mocks --outpkg mocks --case=underscore
// internal/service/lab_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// officeHoursLookback は開始済みのセッションもしばらく表示するための猶予
const officeHoursLookback = 2 * time.Hour

type LabService interface {
	Submit(ctx context.Context, caller model.Caller, req *model.LabSubmissionRequest) (*model.LabSubmission, error)
	LabPage(ctx context.Context, caller model.Caller, slug string) (*model.LabPageResponse, error)
}

type labService struct {
	db             *gorm.DB
	programRepo    repository.ProgramRepository
	enrollmentRepo repository.EnrollmentRepository
	labRepo        repository.LabRepository
	now            func() time.Time
}

func NewLabService(db *gorm.DB, programRepo repository.ProgramRepository, enrollmentRepo repository.EnrollmentRepository, labRepo repository.LabRepository) LabService {
	return &labService{
		db:             db,
		programRepo:    programRepo,
		enrollmentRepo: enrollmentRepo,
		labRepo:        labRepo,
		now:            time.Now,
	}
}

func (s *labService) Submit(ctx context.Context, caller model.Caller, req *model.LabSubmissionRequest) (*model.LabSubmission, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "LabService"))

	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "programId must be a UUID", "programId", model.ErrInvalidInput)
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "title and description are required", "title", model.ErrInvalidInput)
	}
	if !slices.Contains(model.LabCategories, req.Category) {
		return nil, model.NewAppError("VALIDATION_ERROR", "Invalid category", "category", model.ErrInvalidInput)
	}

	if _, err := s.programRepo.FindByID(ctx, s.db, programID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errProgramNotFound
		}
		return nil, toAppError(err)
	}
	if _, err := s.enrollmentRepo.FindActiveByUserAndProgram(ctx, s.db, caller.UserID, programID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("FORBIDDEN", "An active enrollment is required", "programId", model.ErrForbidden)
		}
		return nil, toAppError(err)
	}

	submission := &model.LabSubmission{
		UserID:      caller.UserID,
		ProgramID:   programID,
		Category:    req.Category,
		Title:       title,
		Description: description,
		Status:      model.LabSubmissionStatusPending,
	}
	next, err := s.labRepo.FindNextScheduledOfficeHours(ctx, s.db, programID, s.now())
	switch {
	case err == nil:
		submission.OfficeHoursID = &next.ID
	case errors.Is(err, model.ErrNotFound):
		// 予定がなければセッションなしで受け付ける
	default:
		return nil, toAppError(err)
	}

	if err := s.labRepo.CreateSubmission(ctx, s.db, submission); err != nil {
		return nil, toAppError(err)
	}
	logger.Info("Lab submission created", "submission_id", submission.ID.String(), "program_id", programID.String())
	return submission, nil
}

func (s *labService) LabPage(ctx context.Context, caller model.Caller, slug string) (*model.LabPageResponse, error) {
	program, err := s.programRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errProgramNotFound
		}
		return nil, toAppError(err)
	}

	resp := &model.LabPageResponse{ProgramID: program.ID}

	next, err := s.labRepo.FindUpcomingOfficeHours(ctx, s.db, program.ID, s.now().Add(-officeHoursLookback))
	switch {
	case err == nil:
		resp.NextOfficeHours = next
	case errors.Is(err, model.ErrNotFound):
	default:
		return nil, toAppError(err)
	}

	submissions, err := s.labRepo.ListSubmissions(ctx, s.db, caller.UserID, program.ID)
	if err != nil {
		return nil, toAppError(err)
	}
	resp.Submissions = submissions
	return resp, nil
}
