//go:generate mockery --name DashboardService --output ./mocks --outpkg mocks --case=underscore
// internal/service/dashboard_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardService interface {
	Overview(ctx context.Context, caller model.Caller, slug string) (*model.OverviewResponse, error)
	Journey(ctx context.Context, caller model.Caller, slug string) (*model.JourneyResponse, error)
}

type dashboardService struct {
	db             *gorm.DB
	programRepo    repository.ProgramRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	responseRepo   repository.ResponseRepository
	curriculumRepo repository.CurriculumRepository
	streakRepo     repository.StreakRepository
	cfg            *config.Config
}

func NewDashboardService(
	db *gorm.DB,
	programRepo repository.ProgramRepository,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
	responseRepo repository.ResponseRepository,
	curriculumRepo repository.CurriculumRepository,
	streakRepo repository.StreakRepository,
	cfg *config.Config,
) DashboardService {
	return &dashboardService{
		db:             db,
		programRepo:    programRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		responseRepo:   responseRepo,
		curriculumRepo: curriculumRepo,
		streakRepo:     streakRepo,
		cfg:            cfg,
	}
}

// activeEnrollment はスラッグからプログラムと呼び出し元の有効な受講を引く
func (s *dashboardService) activeEnrollment(ctx context.Context, caller model.Caller, slug string) (*model.Program, *model.Enrollment, error) {
	program, err := s.programRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, errProgramNotFound
		}
		return nil, nil, toAppError(err)
	}
	enrollment, err := s.enrollmentRepo.FindActiveByUserAndProgram(ctx, s.db, caller.UserID, program.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, errNotEnrolled
		}
		return nil, nil, toAppError(err)
	}
	return program, enrollment, nil
}

func (s *dashboardService) Overview(ctx context.Context, caller model.Caller, slug string) (*model.OverviewResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "DashboardService"), slog.String("program_slug", slug))

	program, enrollment, err := s.activeEnrollment(ctx, caller, slug)
	if err != nil {
		return nil, err
	}

	totalDays := TotalDays(program, s.cfg.App.DefaultTotalDays)
	currentDay := ComputeCurrentDay(enrollment.CurrentDay, totalDays)

	resp := &model.OverviewResponse{
		Program: newProgramSummary(program, totalDays, s.cfg),
		Enrollment: model.EnrollmentSummary{
			ID:         enrollment.ID,
			CurrentDay: currentDay,
			TotalDays:  totalDays,
			Progress:   progressPercent(currentDay, totalDays),
			StartDate:  enrollment.StartedAt,
		},
	}

	// 互いに独立した読み取りなので並行に行う
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.progressRepo.CountAllCompletedActions(gctx, s.db, enrollment.ID)
		if err != nil {
			return err
		}
		resp.Stats.ActionsCompleted = count
		return nil
	})
	g.Go(func() error {
		streak, err := s.streakRepo.FindByEnrollment(gctx, s.db, enrollment.ID)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		resp.Stats.CurrentStreak = streak.CurrentStreak
		resp.Stats.LongestStreak = streak.LongestStreak
		resp.Stats.LastActivity = streak.LastActivityDate
		return nil
	})
	g.Go(func() error {
		day, err := s.curriculumRepo.FindDay(gctx, s.db, program.ID, currentDay)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		insight := &model.DailyInsight{Title: day.Title}
		if day.Theme != nil {
			insight.KeyTheme = *day.Theme
		}
		resp.DailyInsight = insight
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load overview", "error", err)
		return nil, toAppError(err)
	}
	return resp, nil
}

func (s *dashboardService) Journey(ctx context.Context, caller model.Caller, slug string) (*model.JourneyResponse, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "DashboardService"), slog.String("program_slug", slug))

	program, enrollment, err := s.activeEnrollment(ctx, caller, slug)
	if err != nil {
		return nil, err
	}

	totalDays := TotalDays(program, s.cfg.App.DefaultTotalDays)
	currentDay := ComputeCurrentDay(enrollment.CurrentDay, totalDays)

	var (
		days      []*model.CurriculumDay
		actions   []*model.ActionProgress
		sections  []*model.SectionProgress
		responses []*model.ExerciseResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		days, err = s.curriculumRepo.ListDaysWithContent(gctx, s.db, program.ID)
		return err
	})
	g.Go(func() (err error) {
		actions, err = s.progressRepo.ListActions(gctx, s.db, enrollment.ID)
		return err
	})
	g.Go(func() (err error) {
		sections, err = s.progressRepo.ListSections(gctx, s.db, enrollment.ID)
		return err
	})
	g.Go(func() (err error) {
		responses, err = s.responseRepo.ListByEnrollment(gctx, s.db, enrollment.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load journey", "error", err)
		return nil, toAppError(err)
	}

	journeyDays := make([]model.JourneyDay, 0, len(days))
	for _, d := range days {
		journeyDays = append(journeyDays, model.JourneyDay{
			CurriculumDay: *d,
			State:         dayState(d.DayNumber, enrollment.Cursor()),
			TotalActions:  d.ActionCount(),
		})
	}

	return &model.JourneyResponse{
		Program:         newProgramSummary(program, totalDays, s.cfg),
		EnrollmentID:    enrollment.ID,
		CurrentDay:      currentDay,
		TotalDays:       totalDays,
		Days:            journeyDays,
		UserActions:     actions,
		SectionProgress: sections,
		Responses:       responses,
	}, nil
}

// dayState は書き込みガードと同じカーソルから日の表示状態を決める
func dayState(dayNumber, currentDay int) string {
	switch {
	case dayNumber < currentDay:
		return model.DayStateCompleted
	case dayNumber == currentDay:
		return model.DayStateActive
	default:
		return model.DayStateLocked
	}
}
