//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	// RecordActionCompletion はアクションの完了状態を保存し、日が進んだかを返す
	RecordActionCompletion(ctx context.Context, caller model.Caller, in model.ActionCompletionInput) (bool, error)
	RecordTextResponse(ctx context.Context, caller model.Caller, in model.TextResponseInput) (*model.ExerciseResponse, error)
	ListResponses(ctx context.Context, caller model.Caller, enrollmentID uuid.UUID) ([]*model.ExerciseResponse, error)
}

type progressService struct {
	db             *gorm.DB // トランザクション用
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	responseRepo   repository.ResponseRepository
	programRepo    repository.ProgramRepository
	streaks        *streakUpdater
	runner         *BackgroundRunner
	cfg            *config.Config
	now            func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
	responseRepo repository.ResponseRepository,
	programRepo repository.ProgramRepository,
	streakRepo repository.StreakRepository,
	runner *BackgroundRunner,
	cfg *config.Config,
) ProgressService {
	s := &progressService{
		db:             db,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		responseRepo:   responseRepo,
		programRepo:    programRepo,
		runner:         runner,
		cfg:            cfg,
		now:            time.Now,
	}
	s.streaks = &streakUpdater{db: db, streakRepo: streakRepo, now: func() time.Time { return s.now() }}
	return s
}

func (s *progressService) RecordActionCompletion(ctx context.Context, caller model.Caller, in model.ActionCompletionInput) (bool, error) {
	logger := middleware.GetLogger(ctx).With(
		slog.String("service", "ProgressService"),
		slog.String("enrollment_id", in.EnrollmentID.String()),
		slog.Int("day", in.DayNumber),
		slog.Int("action_index", in.ActionIndex),
	)

	if in.DayNumber < 1 {
		return false, model.NewAppError("VALIDATION_ERROR", "dayNumber must be a positive integer", "dayNumber", model.ErrInvalidInput)
	}
	if in.ActionIndex < 0 {
		return false, model.NewAppError("VALIDATION_ERROR", "actionIndex must be a non-negative integer", "actionIndex", model.ErrInvalidInput)
	}

	now := s.now()
	dayAdvanced := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同じ受講へのリクエストをここで直列化する
		if s.cfg.Progress.AdvisoryLock {
			if err := s.enrollmentRepo.LockAdvisory(ctx, tx, in.EnrollmentID); err != nil {
				return err
			}
		}
		enrollment, err := s.enrollmentRepo.FindByIDForUpdate(ctx, tx, in.EnrollmentID)
		if err != nil {
			return enrollmentLookupError(err)
		}
		if err := checkOwner(enrollment, caller); err != nil {
			logger.Warn("Progress write on foreign enrollment", "user_id", caller.UserID.String())
			return err
		}
		if err := checkDayWritable(enrollment, in.DayNumber); err != nil {
			logger.Info("Progress write outside current day rejected", "current_day", enrollment.Cursor())
			return err
		}

		// 1. アクションの upsert
		action := &model.ActionProgress{
			UserID:       caller.UserID,
			EnrollmentID: enrollment.ID,
			DayNumber:    in.DayNumber,
			ActionIndex:  in.ActionIndex,
			Completed:    in.Completed,
		}
		if in.Completed {
			action.CompletedAt = &now
		}
		if err := s.progressRepo.UpsertAction(ctx, tx, action); err != nil {
			return err
		}

		// 2. 未完了への変更、または総数不明なら進行判定しない
		if !in.Completed || in.TotalActions == nil || *in.TotalActions <= 0 {
			return nil
		}

		// 3. 完了数を数えて条件付きで進める (ロック下なので1日につき高々1回)
		completed, err := s.progressRepo.CountCompletedActions(ctx, tx, enrollment.ID, in.DayNumber)
		if err != nil {
			return err
		}
		if completed < int64(*in.TotalActions) {
			return nil
		}

		advanced, err := s.enrollmentRepo.AdvanceCurrentDay(ctx, tx, enrollment.ID, in.DayNumber)
		if err != nil {
			return err
		}
		if !advanced {
			logger.Info("Day already advanced by another request")
			return nil
		}
		dayAdvanced = true

		if err := s.progressRepo.UpsertDayCompleted(ctx, tx, enrollment.ID, in.DayNumber, now); err != nil {
			return err
		}

		// 翌日のプレースホルダはセーブポイント内で作り、失敗しても進行は取り消さない
		if err := tx.Transaction(func(sp *gorm.DB) error {
			return s.progressRepo.SeedDayPlaceholder(ctx, sp, enrollment.ID, in.DayNumber+1)
		}); err != nil {
			logger.Warn("Failed to seed next day placeholder", "error", err)
		}

		program, err := s.programRepo.FindByID(ctx, tx, enrollment.ProgramID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if in.DayNumber >= TotalDays(program, s.cfg.App.DefaultTotalDays) {
			if err := s.enrollmentRepo.MarkCompleted(ctx, tx, enrollment.ID, now); err != nil {
				return err
			}
			logger.Info("Program completed")
		}
		return nil
	})
	if err != nil {
		return false, toAppError(err)
	}

	if dayAdvanced {
		logger.Info("Day advanced", "new_day", in.DayNumber+1)
		userID, enrollmentID := caller.UserID, in.EnrollmentID
		s.runner.Go(ctx, "streak_update", func(bgCtx context.Context) error {
			return s.streaks.touch(bgCtx, userID, enrollmentID)
		})
	}
	return dayAdvanced, nil
}

func (s *progressService) RecordTextResponse(ctx context.Context, caller model.Caller, in model.TextResponseInput) (*model.ExerciseResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "ProgressService"))

	if in.DayNumber < 1 {
		return nil, model.NewAppError("VALIDATION_ERROR", "dayNumber must be a positive integer", "dayNumber", model.ErrInvalidInput)
	}
	if (in.ExerciseID == nil) == (in.SectionID == nil) {
		return nil, model.NewAppError("VALIDATION_ERROR", "Exactly one of exerciseId or sectionId is required", "exerciseId", model.ErrInvalidInput)
	}

	response := &model.ExerciseResponse{
		UserID:       caller.UserID,
		EnrollmentID: in.EnrollmentID,
		ExerciseID:   in.ExerciseID,
		SectionID:    in.SectionID,
		DayNumber:    in.DayNumber,
		ResponseText: in.ResponseText,
	}

	// 日の進行と同じロックを取り、ガードと書き込みの間にカーソルが動かないようにする
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.cfg.Progress.AdvisoryLock {
			if err := s.enrollmentRepo.LockAdvisory(ctx, tx, in.EnrollmentID); err != nil {
				return err
			}
		}
		enrollment, err := s.enrollmentRepo.FindByIDForUpdate(ctx, tx, in.EnrollmentID)
		if err != nil {
			return enrollmentLookupError(err)
		}
		if err := checkOwner(enrollment, caller); err != nil {
			return err
		}
		if err := checkDayWritable(enrollment, in.DayNumber); err != nil {
			logger.Info("Response write outside current day rejected", "current_day", enrollment.Cursor())
			return err
		}
		if err := s.responseRepo.Upsert(ctx, tx, response); err != nil {
			logger.Error("Failed to save response", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}
	return response, nil
}

func (s *progressService) ListResponses(ctx context.Context, caller model.Caller, enrollmentID uuid.UUID) ([]*model.ExerciseResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, s.db, enrollmentID)
	if err != nil {
		return nil, enrollmentLookupError(err)
	}
	if err := checkOwner(enrollment, caller); err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.ListByEnrollment(ctx, s.db, enrollmentID)
	if err != nil {
		return nil, toAppError(err)
	}
	return responses, nil
}
