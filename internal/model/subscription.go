package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriptionStatusActive = "active"

	PlanTierIndividual = "individual"

	SubscriptionIntervalOneTime = "one_time"
)

// Subscription は課金プロバイダを持たない単純な購読レコード
type Subscription struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index:idx_subscription_user_program" json:"user_id"`
	ProgramID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_subscription_user_program" json:"program_id"`
	PlanTier           string     `gorm:"not null" json:"plan_tier"`
	Status             string     `gorm:"not null;default:active;index:idx_subscription_user_program" json:"status"`
	AmountCents        *int       `json:"amount_cents"`
	Currency           *string    `json:"currency"`
	Interval           *string    `json:"interval"`
	CurrentPeriodStart time.Time  `gorm:"not null" json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionStatusResponse は GET /subscription のレスポンス
type SubscriptionStatusResponse struct {
	HasSubscription bool          `json:"hasSubscription"`
	Expired         bool          `json:"expired"`
	Subscription    *Subscription `json:"subscription,omitempty"`
	Enrollment      *Enrollment   `json:"enrollment,omitempty"`
	CurrentDay      int           `json:"currentDay,omitempty"`
	TotalDays       int           `json:"totalDays,omitempty"`
	StartDate       *time.Time    `json:"startDate,omitempty"`
	EndDate         *time.Time    `json:"endDate,omitempty"`
}
