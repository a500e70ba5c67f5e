//go:generate mockery --name StreakRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository interface {
	// Create は既にレコードがあれば何もしない
	Create(ctx context.Context, db *gorm.DB, streak *model.UserStreak) error
	FindByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.UserStreak, error)
	Save(ctx context.Context, db *gorm.DB, streak *model.UserStreak) error
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) Create(ctx context.Context, db *gorm.DB, streak *model.UserStreak) error {
	if streak.ID == uuid.Nil {
		streak.ID = uuid.New()
	}
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}},
		DoNothing: true,
	}).Create(streak)
	if result.Error != nil {
		return fmt.Errorf("gormStreakRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStreakRepository) FindByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uuid.UUID) (*model.UserStreak, error) {
	var streak model.UserStreak
	result := db.WithContext(ctx).Where("enrollment_id = ?", enrollmentID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormStreakRepository.FindByEnrollment: %w", result.Error)
	}
	return &streak, nil
}

func (r *gormStreakRepository) Save(ctx context.Context, db *gorm.DB, streak *model.UserStreak) error {
	if err := db.WithContext(ctx).Save(streak).Error; err != nil {
		return fmt.Errorf("gormStreakRepository.Save: %w", err)
	}
	return nil
}
