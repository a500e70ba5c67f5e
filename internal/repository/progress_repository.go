// internal/repository/progress_repository.go
//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	UpsertAction(ctx context.Context, tx *gorm.DB, action *model.ActionProgress) error // トランザクション対応
	CountCompletedActions(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID, day int) (int64, error)
	CountAllCompletedActions(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (int64, error)
	ListActions(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ActionProgress, error)
	UpsertDayCompleted(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, day int, completedAt time.Time) error
	// SeedDayPlaceholder は未完了の日レコードを作る。既にあれば何もしない。
	SeedDayPlaceholder(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, day int) error
	ListDays(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.DayProgress, error)
	ListSections(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.SectionProgress, error)
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) UpsertAction(ctx context.Context, tx *gorm.DB, action *model.ActionProgress) error {
	if action.ID == uuid.Nil {
		action.ID = uuid.New()
	}
	// 同じ (enrollment, day, action_index) は completed と completed_at だけ上書き
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "enrollment_id"}, {Name: "day_number"}, {Name: "action_index"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    action.Completed,
			"completed_at": action.CompletedAt,
			"updated_at":   time.Now(),
		}),
	}).Create(action)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting action progress",
			"error", result.Error,
			"enrollment_id", action.EnrollmentID.String(),
			"day", action.DayNumber,
			"action_index", action.ActionIndex,
		)
		return fmt.Errorf("gormProgressRepository.UpsertAction: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) CountCompletedActions(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID, day int) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ActionProgress{}).
		Where("enrollment_id = ? AND day_number = ? AND completed = ?", enrollmentID, day, true).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountCompletedActions: %w", result.Error)
	}
	return count, nil
}

func (r *gormProgressRepository) CountAllCompletedActions(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ActionProgress{}).
		Where("enrollment_id = ? AND completed = ?", enrollmentID, true).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountAllCompletedActions: %w", result.Error)
	}
	return count, nil
}

func (r *gormProgressRepository) ListActions(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ActionProgress, error) {
	var actions []*model.ActionProgress
	result := db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("day_number ASC, action_index ASC").
		Find(&actions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.ListActions: %w", result.Error)
	}
	return actions, nil
}

func (r *gormProgressRepository) UpsertDayCompleted(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, day int, completedAt time.Time) error {
	dayProgress := &model.DayProgress{
		ID:           uuid.New(),
		EnrollmentID: enrollmentID,
		DayNumber:    day,
		Completed:    true,
		CompletedAt:  &completedAt,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "enrollment_id"}, {Name: "day_number"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    true,
			"completed_at": completedAt,
			"updated_at":   time.Now(),
		}),
	}).Create(dayProgress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting day progress", "error", result.Error, "enrollment_id", enrollmentID.String(), "day", day)
		return fmt.Errorf("gormProgressRepository.UpsertDayCompleted: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) SeedDayPlaceholder(ctx context.Context, tx *gorm.DB, enrollmentID uuid.UUID, day int) error {
	placeholder := &model.DayProgress{
		ID:           uuid.New(),
		EnrollmentID: enrollmentID,
		DayNumber:    day,
		Completed:    false,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "day_number"}},
		DoNothing: true,
	}).Create(placeholder)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.SeedDayPlaceholder: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) ListDays(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.DayProgress, error) {
	var days []*model.DayProgress
	result := db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("day_number ASC").
		Find(&days)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.ListDays: %w", result.Error)
	}
	return days, nil
}

func (r *gormProgressRepository) ListSections(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.SectionProgress, error) {
	var sections []*model.SectionProgress
	result := db.WithContext(ctx).Where("enrollment_id = ?", enrollmentID).Find(&sections)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.ListSections: %w", result.Error)
	}
	return sections, nil
}
