package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Program はプログラム (21日間コースなど) のマスタ
type Program struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug             string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name             string    `gorm:"not null" json:"name"`
	Tagline          *string   `json:"tagline"`
	ShortDescription *string   `json:"short_description"`
	Audience         *string   `json:"audience"`
	Duration         *string   `json:"duration"` // "21 days" のような表記
	Color            *string   `json:"color"`
	Badge            *string   `json:"badge"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Phases []ProgramPhase `gorm:"foreignKey:ProgramID" json:"-"`
}

func (Program) TableName() string {
	return "programs"
}

// ProgramPhase はプログラム内の連続した日の範囲 (証明書の単位)
type ProgramPhase struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID   uuid.UUID `gorm:"type:uuid;not null;index:idx_phase_program_sort" json:"program_id"`
	Name        string    `gorm:"not null" json:"name"`
	Letter      *string   `json:"letter"`
	Description *string   `json:"description"`
	DayStart    int       `gorm:"not null" json:"day_start"`
	DayEnd      int       `gorm:"not null" json:"day_end"`
	SortOrder   int       `gorm:"not null;default:0;index:idx_phase_program_sort" json:"sort_order"`
}

func (ProgramPhase) TableName() string {
	return "program_phases"
}

// DaysLabel は "Days 1-7" 形式の表示用ラベル
func (p ProgramPhase) DaysLabel() string {
	if p.DayStart == p.DayEnd {
		return fmt.Sprintf("Day %d", p.DayStart)
	}
	return fmt.Sprintf("Days %d-%d", p.DayStart, p.DayEnd)
}
