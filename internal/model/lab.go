package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OfficeHoursStatusScheduled = "scheduled"
	OfficeHoursStatusLive      = "live"

	LabSubmissionStatusPending = "pending"
)

// LabCategories は受け付けるシナリオのカテゴリ
var LabCategories = []string{
	"career-challenge",
	"workplace-conflict",
	"leadership-dilemma",
	"professional-growth",
}

// OfficeHours はプログラムごとのオフィスアワー
type OfficeHours struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID       uuid.UUID `gorm:"type:uuid;not null;index:idx_office_hours_program_status" json:"-"`
	Title           string    `gorm:"not null" json:"title"`
	Description     *string   `json:"description"`
	MeetingURL      *string   `json:"meeting_url"`
	ScheduledAt     time.Time `gorm:"not null;index:idx_office_hours_program_status" json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null;default:60" json:"duration_minutes"`
	Status          string    `gorm:"not null;default:scheduled;index:idx_office_hours_program_status" json:"status"`
}

func (OfficeHours) TableName() string {
	return "office_hours"
}

// LabSubmission はオフィスアワーで扱ってほしいシナリオの投稿
type LabSubmission struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_lab_user_program" json:"-"`
	ProgramID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_lab_user_program" json:"-"`
	OfficeHoursID *uuid.UUID `gorm:"type:uuid" json:"office_hours_id"`
	Category      string     `gorm:"not null" json:"category"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `gorm:"not null" json:"description"`
	Status        string     `gorm:"not null;default:pending" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`
}

func (LabSubmission) TableName() string {
	return "lab_submissions"
}

// LabSubmissionRequest は POST /lab-submissions のリクエストボディ
type LabSubmissionRequest struct {
	ProgramID   string `json:"programId" validate:"required,uuid"`
	Category    string `json:"category" validate:"required,oneof=career-challenge workplace-conflict leadership-dilemma professional-growth"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=2000"`
}

type LabSubmissionResponse struct {
	OK         bool           `json:"ok"`
	Submission *LabSubmission `json:"submission"`
}

// LabPageResponse は GET /programs/{slug}/lab のレスポンス
type LabPageResponse struct {
	ProgramID       uuid.UUID        `json:"programId"`
	NextOfficeHours *OfficeHours     `json:"nextOfficeHours"`
	Submissions     []*LabSubmission `json:"submissions"`
}
