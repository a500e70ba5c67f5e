package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を作る。
// 接続を1本に絞り、トランザクションが直列に実行されるようにする。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(repository.Models()...))
	return db
}

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Progress.SideEffectTimeout = 2 * time.Second
	return cfg
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// seedProgram は "21 days" のプログラムと3つのフェーズを作る
func seedProgram(t *testing.T, db *gorm.DB) *model.Program {
	t.Helper()
	program := &model.Program{
		ID:       uuid.New(),
		Slug:     "workforce-ready-" + uuid.NewString()[:8],
		Name:     "Workforce Ready",
		Duration: strPtr("21 days"),
		Badge:    strPtr("WFR"),
	}
	require.NoError(t, db.Create(program).Error)

	phases := []model.ProgramPhase{
		{ID: uuid.New(), ProgramID: program.ID, Name: "Foundation", Letter: strPtr("F"), DayStart: 1, DayEnd: 7, SortOrder: 1},
		{ID: uuid.New(), ProgramID: program.ID, Name: "Growth", Letter: strPtr("G"), DayStart: 8, DayEnd: 14, SortOrder: 2},
		{ID: uuid.New(), ProgramID: program.ID, Name: "Leadership", Letter: strPtr("L"), DayStart: 15, DayEnd: 21, SortOrder: 3},
	}
	require.NoError(t, db.Create(&phases).Error)
	return program
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, programID uuid.UUID, currentDay int) *model.Enrollment {
	t.Helper()
	enrollment := &model.Enrollment{
		ID:         uuid.New(),
		UserID:     userID,
		ProgramID:  programID,
		Status:     model.EnrollmentStatusActive,
		CurrentDay: intPtr(currentDay),
		StartedAt:  time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(enrollment).Error)
	return enrollment
}

func reloadEnrollment(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Enrollment {
	t.Helper()
	var e model.Enrollment
	require.NoError(t, db.WithContext(context.Background()).Where("id = ?", id).First(&e).Error)
	return &e
}
