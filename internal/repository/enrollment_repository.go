//go:generate mockery --name EnrollmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error
	FindByID(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.Enrollment, error)
	// FindByIDForUpdate は行ロック (SELECT ... FOR UPDATE) を取って読む。トランザクション内で使う。
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.Enrollment, error)
	// LockAdvisory は PostgreSQL のトランザクションスコープのアドバイザリロックを取る。他の DB では何もしない。
	LockAdvisory(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) error
	FindByUserAndProgram(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) (*model.Enrollment, error)
	FindActiveByUserAndProgram(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) (*model.Enrollment, error)
	// UpsertActive は (user, program) で受講を作成し、既存なら status だけを active に戻す
	UpsertActive(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) (*model.Enrollment, error)
	Reactivate(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) error
	// AdvanceCurrentDay は current_day <= day の場合のみ current_day = day+1 に更新し、更新したかを返す
	AdvanceCurrentDay(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID, day int) (bool, error)
	MarkCompleted(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID, completedAt time.Time) error
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error {
	logger := middleware.GetLogger(ctx)

	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	result := db.WithContext(ctx).Create(enrollment)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create enrollment",
				"error", result.Error,
				"program_id", enrollment.ProgramID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating enrollment in DB", "error", result.Error)
		return fmt.Errorf("gormEnrollmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindByID(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.Enrollment, error) {
	return r.first(ctx, db.WithContext(ctx).Where("id = ?", enrollmentID), "FindByID")
}

func (r *gormEnrollmentRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.Enrollment, error) {
	q := db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", enrollmentID)
	return r.first(ctx, q, "FindByIDForUpdate")
}

func (r *gormEnrollmentRepository) LockAdvisory(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) error {
	if !isPostgres(db) {
		return nil
	}
	if err := db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", enrollmentID.String()).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error taking advisory lock", "error", err, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.LockAdvisory: %w", err)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindByUserAndProgram(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) (*model.Enrollment, error) {
	q := db.WithContext(ctx).Where("user_id = ? AND program_id = ?", userID, programID)
	return r.first(ctx, q, "FindByUserAndProgram")
}

func (r *gormEnrollmentRepository) FindActiveByUserAndProgram(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) (*model.Enrollment, error) {
	q := db.WithContext(ctx).Where("user_id = ? AND program_id = ? AND status = ?", userID, programID, model.EnrollmentStatusActive)
	return r.first(ctx, q, "FindActiveByUserAndProgram")
}

func (r *gormEnrollmentRepository) UpsertActive(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) (*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)

	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	enrollment.Status = model.EnrollmentStatusActive

	// カーソルと開始日は既存行では上書きしない。完了日時は Reactivate と同じく消す
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "program_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       model.EnrollmentStatusActive,
			"completed_at": nil,
			"updated_at":   time.Now(),
		}),
	}).Create(enrollment)
	if result.Error != nil {
		logger.Error("Error upserting enrollment in DB", "error", result.Error, "program_id", enrollment.ProgramID.String())
		return nil, fmt.Errorf("gormEnrollmentRepository.UpsertActive: %w", result.Error)
	}

	return r.FindByUserAndProgram(ctx, db, enrollment.UserID, enrollment.ProgramID)
}

func (r *gormEnrollmentRepository) Reactivate(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("id = ?", enrollmentID).
		Updates(map[string]interface{}{
			"status":       model.EnrollmentStatusActive,
			"completed_at": nil,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		logger.Error("Error reactivating enrollment", "error", result.Error, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.Reactivate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEnrollmentRepository) AdvanceCurrentDay(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID, day int) (bool, error) {
	logger := middleware.GetLogger(ctx)

	// 条件付き更新: 他のリクエストが既にこの日を越えていれば 0 行
	result := db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("id = ? AND COALESCE(current_day, 1) <= ?", enrollmentID, day).
		Updates(map[string]interface{}{
			"current_day": day + 1,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		logger.Error("Error advancing current_day", "error", result.Error, "enrollment_id", enrollmentID.String(), "day", day)
		return false, fmt.Errorf("gormEnrollmentRepository.AdvanceCurrentDay: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *gormEnrollmentRepository) MarkCompleted(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID, completedAt time.Time) error {
	result := db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("id = ? AND completed_at IS NULL", enrollmentID).
		Update("completed_at", completedAt)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error marking enrollment completed", "error", result.Error, "enrollment_id", enrollmentID.String())
		return fmt.Errorf("gormEnrollmentRepository.MarkCompleted: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) first(ctx context.Context, q *gorm.DB, op string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	result := q.First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding enrollment in DB", "error", result.Error, "op", op)
		return nil, fmt.Errorf("gormEnrollmentRepository.%s: %w", op, result.Error)
	}
	return &enrollment, nil
}
