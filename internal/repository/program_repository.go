//go:generate mockery --name ProgramRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramRepository interface {
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Program, error)
	FindByID(ctx context.Context, db *gorm.DB, programID uuid.UUID) (*model.Program, error)
	ListPhases(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]model.ProgramPhase, error)
}

type gormProgramRepository struct{}

func NewGormProgramRepository() ProgramRepository {
	return &gormProgramRepository{}
}

func (r *gormProgramRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Program, error) {
	var program model.Program
	result := db.WithContext(ctx).Where("slug = ?", slug).First(&program)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding program by slug", "error", result.Error, "slug", slug)
		return nil, fmt.Errorf("gormProgramRepository.FindBySlug: %w", result.Error)
	}
	return &program, nil
}

func (r *gormProgramRepository) FindByID(ctx context.Context, db *gorm.DB, programID uuid.UUID) (*model.Program, error) {
	var program model.Program
	result := db.WithContext(ctx).Where("id = ?", programID).First(&program)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding program by id", "error", result.Error, "program_id", programID.String())
		return nil, fmt.Errorf("gormProgramRepository.FindByID: %w", result.Error)
	}
	return &program, nil
}

// ListPhases は sort_order 順のフェーズ一覧。0件はエラーにしない。
func (r *gormProgramRepository) ListPhases(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]model.ProgramPhase, error) {
	var phases []model.ProgramPhase
	result := db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("sort_order ASC, day_start ASC").
		Find(&phases)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgramRepository.ListPhases: %w", result.Error)
	}
	return phases, nil
}
