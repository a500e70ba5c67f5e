package model

import (
	"time"

	"github.com/google/uuid"
)

// UserStreak は連続学習日数の記録 (ベストエフォートで更新)
type UserStreak struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	EnrollmentID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	CurrentStreak    int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"not null;default:0" json:"longest_streak"`
	LastActivityDate *time.Time `gorm:"type:date" json:"last_activity_date"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}
