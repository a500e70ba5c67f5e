//go:generate mockery --name EnrollmentService --output ./mocks --outpkg mocks --case=underscore
// internal/service/enrollment_service.go
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

type EnrollmentService interface {
	Enroll(ctx context.Context, caller model.Caller, req *model.EnrollRequest) (*model.EnrollResponse, error)
	GetSubscriptionStatus(ctx context.Context, caller model.Caller) (*model.SubscriptionStatusResponse, error)
	// Dashboard は有効な受講がなければ自動で受講登録してからダッシュボードを返す
	Dashboard(ctx context.Context, caller model.Caller, slug string) (*model.DashboardResponse, error)
}

type enrollmentService struct {
	db               *gorm.DB
	programRepo      repository.ProgramRepository
	enrollmentRepo   repository.EnrollmentRepository
	subscriptionRepo repository.SubscriptionRepository
	streaks          *streakUpdater
	runner           *BackgroundRunner
	cfg              *config.Config
	now              func() time.Time
}

func NewEnrollmentService(
	db *gorm.DB,
	programRepo repository.ProgramRepository,
	enrollmentRepo repository.EnrollmentRepository,
	subscriptionRepo repository.SubscriptionRepository,
	streakRepo repository.StreakRepository,
	runner *BackgroundRunner,
	cfg *config.Config,
) EnrollmentService {
	s := &enrollmentService{
		db:               db,
		programRepo:      programRepo,
		enrollmentRepo:   enrollmentRepo,
		subscriptionRepo: subscriptionRepo,
		runner:           runner,
		cfg:              cfg,
		now:              time.Now,
	}
	s.streaks = &streakUpdater{db: db, streakRepo: streakRepo, now: func() time.Time { return s.now() }}
	return s
}

func (s *enrollmentService) Enroll(ctx context.Context, caller model.Caller, req *model.EnrollRequest) (*model.EnrollResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "EnrollmentService"), slog.String("program_slug", req.ProgramSlug))

	if req.ProgramSlug == "" || req.PlanTier == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "programSlug and planTier are required", "programSlug", model.ErrInvalidInput)
	}

	program, err := s.programRepo.FindBySlug(ctx, s.db, req.ProgramSlug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errProgramNotFound
		}
		return nil, toAppError(err)
	}

	now := s.now()
	totalDays := TotalDays(program, s.cfg.App.DefaultTotalDays)
	endDate := now.AddDate(0, 0, totalDays)

	var resp *model.EnrollResponse
	created := false

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.enrollmentRepo.FindByUserAndProgram(ctx, tx, caller.UserID, program.ID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if existing != nil {
			_, subErr := s.subscriptionRepo.FindActive(ctx, tx, caller.UserID, program.ID)
			if subErr == nil {
				resp = &model.EnrollResponse{Message: "Already enrolled", EnrollmentID: existing.ID}
				return nil
			}
			if !errors.Is(subErr, model.ErrNotFound) {
				return subErr
			}
		}

		if err := s.subscriptionRepo.Create(ctx, tx, s.newSubscription(caller, program.ID, req.PlanTier, now, endDate)); err != nil {
			return err
		}

		if existing != nil {
			// カーソルは単調増加なので再開時もリセットしない
			if err := s.enrollmentRepo.Reactivate(ctx, tx, existing.ID); err != nil {
				return err
			}
			resp = &model.EnrollResponse{Message: "Enrollment reactivated", EnrollmentID: existing.ID}
			return nil
		}

		initialDay := InitialCurrentDay(now, now, totalDays)
		enrollment := &model.Enrollment{
			UserID:     caller.UserID,
			ProgramID:  program.ID,
			Status:     model.EnrollmentStatusActive,
			CurrentDay: &initialDay,
			StartedAt:  now,
		}
		if err := s.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
			return err
		}
		created = true
		resp = &model.EnrollResponse{
			Message:      "Enrolled successfully",
			EnrollmentID: enrollment.ID,
			StartDate:    &now,
			EndDate:      &endDate,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("ALREADY_ENROLLED", "Already enrolled", "programSlug", model.ErrConflict)
		}
		logger.Error("Enrollment transaction failed", "error", err)
		return nil, toAppError(err)
	}

	if created {
		userID, enrollmentID := caller.UserID, resp.EnrollmentID
		s.runner.Go(ctx, "streak_seed", func(bgCtx context.Context) error {
			return s.streaks.seed(bgCtx, userID, enrollmentID)
		})
	}
	logger.Info("Enroll handled", "enrollment_id", resp.EnrollmentID.String(), "result", resp.Message)
	return resp, nil
}

func (s *enrollmentService) newSubscription(caller model.Caller, programID uuid.UUID, planTier string, start, end time.Time) *model.Subscription {
	currency := s.cfg.App.Currency
	interval := model.SubscriptionIntervalOneTime
	sub := &model.Subscription{
		UserID:             caller.UserID,
		ProgramID:          programID,
		PlanTier:           planTier,
		Status:             model.SubscriptionStatusActive,
		Currency:           &currency,
		Interval:           &interval,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   &end,
	}
	if planTier == model.PlanTierIndividual {
		amount := s.cfg.App.IndividualPriceCents
		sub.AmountCents = &amount
	}
	return sub
}

func (s *enrollmentService) GetSubscriptionStatus(ctx context.Context, caller model.Caller) (*model.SubscriptionStatusResponse, error) {
	sub, err := s.subscriptionRepo.FindLatestActiveByUser(ctx, s.db, caller.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.SubscriptionStatusResponse{HasSubscription: false}, nil
		}
		return nil, toAppError(err)
	}

	totalDays := TotalDays(sub.Program, s.cfg.App.DefaultTotalDays)
	resp := &model.SubscriptionStatusResponse{
		HasSubscription: true,
		Subscription:    sub,
		TotalDays:       totalDays,
		EndDate:         sub.CurrentPeriodEnd,
	}

	enrollment, err := s.enrollmentRepo.FindActiveByUserAndProgram(ctx, s.db, caller.UserID, sub.ProgramID)
	switch {
	case err == nil:
		resp.Enrollment = enrollment
		resp.CurrentDay = ComputeCurrentDay(enrollment.CurrentDay, totalDays)
		startedAt := enrollment.StartedAt
		resp.StartDate = &startedAt
	case errors.Is(err, model.ErrNotFound):
		resp.CurrentDay = 1
		periodStart := sub.CurrentPeriodStart
		resp.StartDate = &periodStart
	default:
		return nil, toAppError(err)
	}

	// 期限切れでも currentDay はカーソルのまま。期限は Expired だけで伝える
	if sub.CurrentPeriodEnd != nil && s.now().After(*sub.CurrentPeriodEnd) {
		resp.Expired = true
	}
	return resp, nil
}

func (s *enrollmentService) Dashboard(ctx context.Context, caller model.Caller, slug string) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "EnrollmentService"), slog.String("program_slug", slug))

	program, err := s.programRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errProgramNotFound
		}
		return nil, toAppError(err)
	}

	now := s.now()
	totalDays := TotalDays(program, s.cfg.App.DefaultTotalDays)

	var enrollment *model.Enrollment
	var sub *model.Subscription
	autoEnrolled := false

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err = s.enrollmentRepo.FindActiveByUserAndProgram(ctx, tx, caller.UserID, program.ID)
		if errors.Is(err, model.ErrNotFound) {
			initialDay := InitialCurrentDay(now, now, totalDays)
			enrollment, err = s.enrollmentRepo.UpsertActive(ctx, tx, &model.Enrollment{
				UserID:     caller.UserID,
				ProgramID:  program.ID,
				CurrentDay: &initialDay,
				StartedAt:  now,
			})
			autoEnrolled = err == nil
		}
		if err != nil {
			return err
		}

		sub, err = s.subscriptionRepo.FindActive(ctx, tx, caller.UserID, program.ID)
		if errors.Is(err, model.ErrNotFound) {
			sub = s.newSubscription(caller, program.ID, model.PlanTierIndividual, now, now.AddDate(0, 0, totalDays))
			err = s.subscriptionRepo.Create(ctx, tx, sub)
		}
		return err
	})
	if err != nil {
		logger.Error("Dashboard enrollment lookup failed", "error", err)
		return nil, toAppError(err)
	}
	if autoEnrolled {
		logger.Info("Auto-enrolled user", "enrollment_id", enrollment.ID.String())
		userID, enrollmentID := caller.UserID, enrollment.ID
		s.runner.Go(ctx, "streak_seed", func(bgCtx context.Context) error {
			return s.streaks.seed(bgCtx, userID, enrollmentID)
		})
	}

	currentDay := ComputeCurrentDay(enrollment.CurrentDay, totalDays)
	return &model.DashboardResponse{
		Program: newProgramSummary(program, totalDays, s.cfg),
		Enrollment: model.EnrollmentSummary{
			ID:         enrollment.ID,
			CurrentDay: currentDay,
			TotalDays:  totalDays,
			Progress:   progressPercent(currentDay, totalDays),
			StartDate:  enrollment.StartedAt,
			EndDate:    sub.CurrentPeriodEnd,
			PlanTier:   sub.PlanTier,
		},
	}, nil
}

// newProgramSummary はダッシュボード系画面で共通のプログラム情報を作る
func newProgramSummary(program *model.Program, totalDays int, cfg *config.Config) model.ProgramSummary {
	summary := model.ProgramSummary{
		ID:            program.ID,
		Slug:          program.Slug,
		Name:          program.Name,
		Tagline:       program.Tagline,
		Audience:      program.Audience,
		BadgeColor:    cfg.Certificate.DefaultColor,
		SignalAcronym: cfg.Certificate.DefaultBadge,
		TotalDays:     totalDays,
	}
	if program.Color != nil && *program.Color != "" {
		summary.BadgeColor = *program.Color
	}
	if program.Badge != nil && *program.Badge != "" {
		summary.SignalAcronym = *program.Badge
	}
	return summary
}
