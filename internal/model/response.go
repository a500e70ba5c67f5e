package model

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseResponse はエクササイズまたはセクションへの記述回答。
// (enrollment, exercise_id) と (enrollment, section_id) はそれぞれ一意。
type ExerciseResponse struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	EnrollmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_response_exercise,priority:1;uniqueIndex:uq_response_section,priority:1" json:"-"`
	ExerciseID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_response_exercise,priority:2" json:"exercise_id"`
	SectionID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_response_section,priority:2" json:"section_id"`
	DayNumber    int        `gorm:"not null" json:"day_number"`
	ResponseText string     `gorm:"not null;default:''" json:"response_text"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (ExerciseResponse) TableName() string {
	return "user_exercise_responses"
}

// SaveResponseRequest は POST /responses のリクエストボディ
type SaveResponseRequest struct {
	EnrollmentID string  `json:"enrollmentId" validate:"required,uuid"`
	ExerciseID   *string `json:"exerciseId" validate:"omitempty,uuid"`
	SectionID    *string `json:"sectionId" validate:"omitempty,uuid"`
	DayNumber    *int    `json:"dayNumber" validate:"required,min=1"`
	ResponseText string  `json:"responseText"`
}

// TextResponseInput はエンジンへの入力。ExerciseID と SectionID はどちらか一方のみ。
type TextResponseInput struct {
	EnrollmentID uuid.UUID
	DayNumber    int
	ExerciseID   *uuid.UUID
	SectionID    *uuid.UUID
	ResponseText string
}

type ResponsesResponse struct {
	Responses []*ExerciseResponse `json:"responses"`
}
