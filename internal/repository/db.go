package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tdevakiruba/Workforce/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は PostgreSQL への GORM 接続を作成する
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	// APP_ENV=dev なら SQL を INFO で出す
	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}

	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")
	return db, nil
}

// Models はこのサービスが扱う全テーブルのモデル。
// 本番のスキーマ管理は外部で行い、ここはテストの AutoMigrate 用。
func Models() []interface{} {
	return []interface{}{
		&model.Program{},
		&model.ProgramPhase{},
		&model.CurriculumDay{},
		&model.CurriculumSection{},
		&model.CurriculumExercise{},
		&model.Enrollment{},
		&model.ActionProgress{},
		&model.DayProgress{},
		&model.SectionProgress{},
		&model.ExerciseResponse{},
		&model.Subscription{},
		&model.UserStreak{},
		&model.OfficeHours{},
		&model.LabSubmission{},
	}
}

// isPostgres はロック方式の切り替えに使う
func isPostgres(db *gorm.DB) bool {
	return db.Dialector != nil && db.Dialector.Name() == "postgres"
}
