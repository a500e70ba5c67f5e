//go:generate mockery --name LabRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabRepository interface {
	CreateSubmission(ctx context.Context, db *gorm.DB, submission *model.LabSubmission) error
	ListSubmissions(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) ([]*model.LabSubmission, error)
	// FindNextScheduledOfficeHours は from 以降で最も早い scheduled のセッション
	FindNextScheduledOfficeHours(ctx context.Context, db *gorm.DB, programID uuid.UUID, from time.Time) (*model.OfficeHours, error)
	// FindUpcomingOfficeHours は scheduled または live で since 以降の最も早いセッション
	FindUpcomingOfficeHours(ctx context.Context, db *gorm.DB, programID uuid.UUID, since time.Time) (*model.OfficeHours, error)
}

type gormLabRepository struct{}

func NewGormLabRepository() LabRepository {
	return &gormLabRepository{}
}

func (r *gormLabRepository) CreateSubmission(ctx context.Context, db *gorm.DB, submission *model.LabSubmission) error {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.Status == "" {
		submission.Status = model.LabSubmissionStatusPending
	}
	if err := db.WithContext(ctx).Create(submission).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating lab submission", "error", err, "program_id", submission.ProgramID.String())
		return fmt.Errorf("gormLabRepository.CreateSubmission: %w", err)
	}
	return nil
}

func (r *gormLabRepository) ListSubmissions(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) ([]*model.LabSubmission, error) {
	var submissions []*model.LabSubmission
	result := db.WithContext(ctx).
		Where("user_id = ? AND program_id = ?", userID, programID).
		Order("created_at DESC").
		Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormLabRepository.ListSubmissions: %w", result.Error)
	}
	return submissions, nil
}

func (r *gormLabRepository) FindNextScheduledOfficeHours(ctx context.Context, db *gorm.DB, programID uuid.UUID, from time.Time) (*model.OfficeHours, error) {
	q := db.WithContext(ctx).
		Where("program_id = ? AND status = ? AND scheduled_at >= ?", programID, model.OfficeHoursStatusScheduled, from)
	return r.firstOfficeHours(q, "FindNextScheduledOfficeHours")
}

func (r *gormLabRepository) FindUpcomingOfficeHours(ctx context.Context, db *gorm.DB, programID uuid.UUID, since time.Time) (*model.OfficeHours, error) {
	q := db.WithContext(ctx).
		Where("program_id = ? AND status IN ? AND scheduled_at >= ?",
			programID,
			[]string{model.OfficeHoursStatusScheduled, model.OfficeHoursStatusLive},
			since,
		)
	return r.firstOfficeHours(q, "FindUpcomingOfficeHours")
}

func (r *gormLabRepository) firstOfficeHours(q *gorm.DB, op string) (*model.OfficeHours, error) {
	var officeHours model.OfficeHours
	result := q.Order("scheduled_at ASC").First(&officeHours)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormLabRepository.%s: %w", op, result.Error)
	}
	return &officeHours, nil
}
