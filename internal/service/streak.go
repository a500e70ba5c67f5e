package service

import (
	"context"
	"errors"
	"time"

	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// streakUpdater は連続学習日数をベストエフォートで更新する。BackgroundRunner から呼ばれる。
type streakUpdater struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
	now        func() time.Time
}

// seed は受講開始時のレコードを作る。既存なら何もしない。
func (u *streakUpdater) seed(ctx context.Context, userID, enrollmentID uuid.UUID) error {
	today := truncateDay(u.now())
	return u.streakRepo.Create(ctx, u.db, &model.UserStreak{
		UserID:           userID,
		EnrollmentID:     enrollmentID,
		LastActivityDate: &today,
	})
}

// touch は日の進行時に呼ばれ、今日の活動を反映する。レコードがなければ作る。
func (u *streakUpdater) touch(ctx context.Context, userID, enrollmentID uuid.UUID) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		streak, err := u.streakRepo.FindByEnrollment(ctx, tx, enrollmentID)
		if errors.Is(err, model.ErrNotFound) {
			streak = &model.UserStreak{UserID: userID, EnrollmentID: enrollmentID}
			nextStreak(streak, u.now())
			return u.streakRepo.Create(ctx, tx, streak)
		}
		if err != nil {
			return err
		}
		nextStreak(streak, u.now())
		return u.streakRepo.Save(ctx, tx, streak)
	})
}
