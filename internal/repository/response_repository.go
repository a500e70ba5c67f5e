//go:generate mockery --name ResponseRepository --output ./mocks --outpkg mocks --case=underscore
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

type ResponseRepository interface {
	// Upsert は exercise_id があれば (enrollment, exercise)、なければ (enrollment, section) をキーにする。
	// 戻った response は保存済みの行の内容になる
	Upsert(ctx context.Context, db *gorm.DB, response *model.ExerciseResponse) error
	ListByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ExerciseResponse, error)
}

type gormResponseRepository struct{}

func NewGormResponseRepository() ResponseRepository {
	return &gormResponseRepository{}
}

func (r *gormResponseRepository) Upsert(ctx context.Context, db *gorm.DB, response *model.ExerciseResponse) error {
	if response.ExerciseID == nil && response.SectionID == nil {
		return fmt.Errorf("gormResponseRepository.Upsert: exercise or section id is required: %w", model.ErrInvalidInput)
	}
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}

	keyColumn := "section_id"
	if response.ExerciseID != nil {
		keyColumn = "exercise_id"
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "enrollment_id"}, {Name: keyColumn}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"response_text": response.ResponseText,
			"day_number":    response.DayNumber,
			"updated_at":    time.Now(),
		}),
	}).Create(response)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting exercise response",
			"error", result.Error,
			"enrollment_id", response.EnrollmentID.String(),
			"key", keyColumn,
		)
		return fmt.Errorf("gormResponseRepository.Upsert: %w", result.Error)
	}

	// 衝突時は生成したIDが使われないので、保存済みの行で上書きする
	keyValue := response.SectionID
	if response.ExerciseID != nil {
		keyValue = response.ExerciseID
	}
	var stored model.ExerciseResponse
	if err := db.WithContext(ctx).
		Where("enrollment_id = ? AND "+keyColumn+" = ?", response.EnrollmentID, *keyValue).
		First(&stored).Error; err != nil {
		return fmt.Errorf("gormResponseRepository.Upsert: reload: %w", err)
	}
	*response = stored
	return nil
}

func (r *gormResponseRepository) ListByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) ([]*model.ExerciseResponse, error) {
	var responses []*model.ExerciseResponse
	result := db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("day_number ASC, updated_at ASC").
		Find(&responses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormResponseRepository.ListByEnrollment: %w", result.Error)
	}
	return responses, nil
}
