//go:generate mockery --name CurriculumRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CurriculumRepository interface {
	// ListDaysWithContent はセクションとエクササイズを sort_order 順で Preload する
	ListDaysWithContent(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]*model.CurriculumDay, error)
	FindDay(ctx context.Context, db *gorm.DB, programID uuid.UUID, dayNumber int) (*model.CurriculumDay, error)
}

type gormCurriculumRepository struct{}

func NewGormCurriculumRepository() CurriculumRepository {
	return &gormCurriculumRepository{}
}

func (r *gormCurriculumRepository) ListDaysWithContent(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]*model.CurriculumDay, error) {
	var days []*model.CurriculumDay
	result := db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Sections.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("program_id = ?", programID).
		Order("day_number ASC").
		Find(&days)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCurriculumRepository.ListDaysWithContent: %w", result.Error)
	}
	return days, nil
}

func (r *gormCurriculumRepository) FindDay(ctx context.Context, db *gorm.DB, programID uuid.UUID, dayNumber int) (*model.CurriculumDay, error) {
	var day model.CurriculumDay
	result := db.WithContext(ctx).
		Where("program_id = ? AND day_number = ?", programID, dayNumber).
		First(&day)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCurriculumRepository.FindDay: %w", result.Error)
	}
	return &day, nil
}
