package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CurriculumDay はプログラムの1日分のカリキュラム (参照専用データ)
type CurriculumDay struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_curriculum_day" json:"-"`
	DayNumber          int       `gorm:"not null;uniqueIndex:uq_curriculum_day" json:"day_number"`
	Title              string    `gorm:"not null" json:"title"`
	Theme              *string   `json:"theme"`
	DayObjective       *string   `json:"day_objective"`
	KeyTeachingQuote   *string   `json:"key_teaching_quote"`
	BehaviorsInstilled *string   `json:"behaviors_instilled"`
	EndOfDayOutcomes   *string   `json:"end_of_day_outcomes"`
	FacilitatorClose   *string   `json:"facilitator_close"`

	Sections []CurriculumSection `gorm:"foreignKey:DayID" json:"sections"`
}

func (CurriculumDay) TableName() string {
	return "curriculum_days"
}

// ActionCount はその日の完了対象 (エクササイズ) の総数
func (d CurriculumDay) ActionCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Exercises)
	}
	return n
}

type CurriculumSection struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DayID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	SectionType string    `gorm:"not null" json:"section_type"`
	Title       string    `json:"title"`
	Content     *string   `json:"content"`

	Exercises []CurriculumExercise `gorm:"foreignKey:SectionID" json:"exercises"`
}

func (CurriculumSection) TableName() string {
	return "curriculum_sections"
}

type CurriculumExercise struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	SortOrder       int            `gorm:"not null;default:0" json:"sort_order"`
	Question        string         `gorm:"not null" json:"question"`
	QuestionType    string         `json:"question_type"`
	Options         datatypes.JSON `json:"options"`
	ThinkingPrompts datatypes.JSON `json:"thinking_prompts"`
}

func (CurriculumExercise) TableName() string {
	return "curriculum_exercises"
}
