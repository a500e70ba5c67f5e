package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DayStateCompleted = "completed"
	DayStateActive    = "active"
	DayStateLocked    = "locked"
)

// ProgramSummary はダッシュボード各画面で共通のプログラム表示情報
type ProgramSummary struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Tagline       *string   `json:"tagline,omitempty"`
	Audience      *string   `json:"audience,omitempty"`
	BadgeColor    string    `json:"badgeColor"`
	SignalAcronym string    `json:"signalAcronym"`
	TotalDays     int       `json:"totalDays"`
}

// EnrollmentSummary は読み取り側のカーソル情報 (ComputeCurrentDay 済み)
type EnrollmentSummary struct {
	ID         uuid.UUID  `json:"id"`
	CurrentDay int        `json:"currentDay"`
	TotalDays  int        `json:"totalDays"`
	Progress   int        `json:"progress"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	PlanTier   string     `json:"planTier"`
}

type DashboardResponse struct {
	Program    ProgramSummary    `json:"program"`
	Enrollment EnrollmentSummary `json:"enrollment"`
}

type OverviewStats struct {
	ActionsCompleted int64      `json:"actionsCompleted"`
	CurrentStreak    int        `json:"currentStreak"`
	LongestStreak    int        `json:"longestStreak"`
	LastActivity     *time.Time `json:"lastActivity"`
}

type DailyInsight struct {
	Title    string `json:"title"`
	KeyTheme string `json:"keyTheme"`
}

type OverviewResponse struct {
	Program      ProgramSummary    `json:"program"`
	Enrollment   EnrollmentSummary `json:"enrollment"`
	Stats        OverviewStats     `json:"stats"`
	DailyInsight *DailyInsight     `json:"dailyInsight"`
}

// JourneyDay はカリキュラム1日分に、カーソルから導出した状態を付けたもの
type JourneyDay struct {
	CurriculumDay
	State        string `json:"state"`
	TotalActions int    `json:"totalActions"`
}

type JourneyResponse struct {
	Program         ProgramSummary      `json:"program"`
	EnrollmentID    uuid.UUID           `json:"enrollmentId"`
	CurrentDay      int                 `json:"currentDay"`
	TotalDays       int                 `json:"totalDays"`
	Days            []JourneyDay        `json:"days"`
	UserActions     []*ActionProgress   `json:"userActions"`
	SectionProgress []*SectionProgress  `json:"userSectionProgress"`
	Responses       []*ExerciseResponse `json:"userResponses"`
}
