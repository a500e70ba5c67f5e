//go:generate mockery --name SubscriptionRepository --output ./mocks --outpkg mocks --case=underscore
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

type SubscriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, subscription *model.Subscription) error
	FindActive(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) (*model.Subscription, error)
	// FindLatestActiveByUser は最新の有効な購読を Program 付きで返す
	FindLatestActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Subscription, error)
}

type gormSubscriptionRepository struct{}

func NewGormSubscriptionRepository() SubscriptionRepository {
	return &gormSubscriptionRepository{}
}

func (r *gormSubscriptionRepository) Create(ctx context.Context, db *gorm.DB, subscription *model.Subscription) error {
	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	if err := db.WithContext(ctx).Create(subscription).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating subscription in DB", "error", err, "program_id", subscription.ProgramID.String())
		return fmt.Errorf("gormSubscriptionRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSubscriptionRepository) FindActive(ctx context.Context, db *gorm.DB, userID, programID uuid.UUID) (*model.Subscription, error) {
	var subscription model.Subscription
	result := db.WithContext(ctx).
		Where("user_id = ? AND program_id = ? AND status = ?", userID, programID, model.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSubscriptionRepository.FindActive: %w", result.Error)
	}
	return &subscription, nil
}

func (r *gormSubscriptionRepository) FindLatestActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Subscription, error) {
	var subscription model.Subscription
	result := db.WithContext(ctx).
		Preload("Program").
		Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSubscriptionRepository.FindLatestActiveByUser: %w", result.Error)
	}
	return &subscription, nil
}
