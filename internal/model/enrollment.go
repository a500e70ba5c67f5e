package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentStatusActive   = "active"
	EnrollmentStatusInactive = "inactive"
)

// Enrollment は1ユーザーの1プログラムへの参加。
// CurrentDay が解放済みコンテンツを決める唯一のカーソル。
type Enrollment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_program" json:"user_id"`
	ProgramID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_program" json:"program_id"`
	Status      string     `gorm:"not null;default:active" json:"status"`
	CurrentDay  *int       `gorm:"default:1" json:"current_day"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// Cursor は保存されたカーソル値。未設定なら 1。
func (e *Enrollment) Cursor() int {
	if e.CurrentDay == nil {
		return 1
	}
	return *e.CurrentDay
}

func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentStatusActive
}

// EnrollRequest は POST /enroll のリクエストボディ
type EnrollRequest struct {
	ProgramSlug string `json:"programSlug" validate:"required"`
	PlanTier    string `json:"planTier" validate:"required"`
}

// EnrollResponse は POST /enroll のレスポンス
type EnrollResponse struct {
	Message      string     `json:"message"`
	EnrollmentID uuid.UUID  `json:"enrollmentId"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}
