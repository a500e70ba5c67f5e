// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActionProgress はエクササイズ単位の完了記録。
// (enrollment, day, action_index) ごとに高々1行 (upsert)。
type ActionProgress struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	EnrollmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_action,priority:1" json:"-"`
	DayNumber    int        `gorm:"not null;uniqueIndex:uq_user_action,priority:2" json:"day_number"`
	ActionIndex  int        `gorm:"not null;uniqueIndex:uq_user_action,priority:3" json:"action_index"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

func (ActionProgress) TableName() string {
	return "user_actions"
}

// DayProgress は日単位の完了マーカー。日の進行時にのみ書き込まれる。
type DayProgress struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	EnrollmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_day_progress,priority:1" json:"-"`
	DayNumber    int        `gorm:"not null;uniqueIndex:uq_user_day_progress,priority:2" json:"day_number"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

func (DayProgress) TableName() string {
	return "user_day_progress"
}

// SectionProgress はセクション単位の完了記録 (ジャーニー画面の表示用)
type SectionProgress struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	EnrollmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_section_progress,priority:1" json:"-"`
	SectionID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_section_progress,priority:2" json:"section_id"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
}

func (SectionProgress) TableName() string {
	return "user_section_progress"
}

// RecordProgressRequest は POST /progress のリクエストボディ
type RecordProgressRequest struct {
	EnrollmentID string `json:"enrollmentId" validate:"required,uuid"`
	DayNumber    *int   `json:"dayNumber" validate:"required,min=1"`
	ActionIndex  *int   `json:"actionIndex" validate:"required,min=0"`
	Completed    bool   `json:"completed"`
	TotalActions *int   `json:"totalActions"`
}

// ActionCompletionInput はエンジンへの入力
type ActionCompletionInput struct {
	EnrollmentID uuid.UUID
	DayNumber    int
	ActionIndex  int
	Completed    bool
	TotalActions *int // 未指定なら日の進行判定を行わない
}

type RecordProgressResponse struct {
	OK          bool `json:"ok"`
	DayAdvanced bool `json:"dayAdvanced"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
