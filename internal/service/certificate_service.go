//go:generate mockery --name CertificateService --output ./mocks --outpkg mocks --case=underscore
// internal/service/certificate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tdevakiruba/Workforce/internal/config"
	"github.com/tdevakiruba/Workforce/internal/middleware"
	"github.com/tdevakiruba/Workforce/internal/model"
	"github.com/tdevakiruba/Workforce/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const issuedDateLayout = "January 2, 2006"

type CertificateService interface {
	// GetCertificate は phase ("1".."n" または "program") の証明書データを返す
	GetCertificate(ctx context.Context, caller model.Caller, enrollmentID uuid.UUID, phase string) (*model.Certificate, error)
	ListCertificates(ctx context.Context, caller model.Caller, slug string) (*model.CertificateListResponse, error)
}

type certificateService struct {
	db             *gorm.DB
	programRepo    repository.ProgramRepository
	enrollmentRepo repository.EnrollmentRepository
	cfg            *config.Config
	now            func() time.Time
}

func NewCertificateService(db *gorm.DB, programRepo repository.ProgramRepository, enrollmentRepo repository.EnrollmentRepository, cfg *config.Config) CertificateService {
	return &certificateService{
		db:             db,
		programRepo:    programRepo,
		enrollmentRepo: enrollmentRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *certificateService) GetCertificate(ctx context.Context, caller model.Caller, enrollmentID uuid.UUID, phase string) (*model.Certificate, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "CertificateService"), slog.String("enrollment_id", enrollmentID.String()))

	if phase == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Missing parameters", "phase", model.ErrInvalidInput)
	}

	// 他人の受講は存在しないものとして扱う
	enrollment, err := s.enrollmentRepo.FindByID(ctx, s.db, enrollmentID)
	if err != nil {
		return nil, enrollmentLookupError(err)
	}
	if enrollment.UserID != caller.UserID {
		return nil, errEnrollmentNotFound
	}

	program, err := s.programRepo.FindByID(ctx, s.db, enrollment.ProgramID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errProgramNotFound
		}
		return nil, toAppError(err)
	}
	phases, err := s.programRepo.ListPhases(ctx, s.db, program.ID)
	if err != nil {
		return nil, toAppError(err)
	}
	if len(phases) == 0 {
		return nil, model.NewAppError("NOT_FOUND", "No phases found", "", model.ErrNotFound)
	}

	totalDays := TotalDays(program, s.cfg.App.DefaultTotalDays)
	currentDay := ComputeCurrentDay(enrollment.CurrentDay, totalDays)

	cert := &model.Certificate{
		CredentialID: s.credentialID(program, enrollmentID, phase),
		UserName:     caller.DisplayName(),
		ProgramName:  program.Name,
		IssuedDate:   s.now().Format(issuedDateLayout),
		Issuer:       s.cfg.Certificate.Issuer,
		TotalDays:    totalDays,
		Color:        s.color(program),
	}

	if phase == model.CertificatePhaseProgram {
		if !ProgramEarned(currentDay, totalDays) {
			logger.Info("Program certificate requested before completion", "current_day", currentDay)
			return nil, model.NewAppError("NOT_EARNED", "Program not yet completed", "phase", model.ErrForbidden)
		}
		cert.Type = model.CertificateTypeProgram
		cert.Title = fmt.Sprintf("%s -- Program Completion", program.Name)
		cert.Subtitle = fmt.Sprintf("Successfully completed the entire %d-day %s program", totalDays, program.Name)
		for _, p := range phases {
			cert.Phases = append(cert.Phases, model.CertificatePhase{
				Name:        p.Name,
				Letter:      p.Letter,
				Days:        p.DaysLabel(),
				Description: p.Description,
			})
		}
		return cert, nil
	}

	phaseNumber, err := strconv.Atoi(phase)
	if err != nil || phaseNumber < 1 || phaseNumber > len(phases) {
		return nil, model.NewAppError("VALIDATION_ERROR", "Invalid phase", "phase", model.ErrInvalidInput)
	}
	p := phases[phaseNumber-1]
	if !PhaseEarned(currentDay, p) {
		logger.Info("Phase certificate requested before completion", "current_day", currentDay, "phase", phaseNumber)
		return nil, model.NewAppError("NOT_EARNED", "Phase not yet completed", "phase", model.ErrForbidden)
	}

	cert.Type = model.CertificateTypePhase
	cert.Title = fmt.Sprintf("%s Mastery", p.Name)
	cert.Subtitle = fmt.Sprintf("Completed Phase %d: %s (%s)", phaseNumber, p.Name, p.DaysLabel())
	cert.PhaseName = p.Name
	cert.PhaseLetter = p.Letter
	cert.PhaseDays = p.DaysLabel()
	cert.PhaseDescription = p.Description
	cert.PhaseNumber = phaseNumber
	cert.TotalPhases = len(phases)
	return cert, nil
}

func (s *certificateService) ListCertificates(ctx context.Context, caller model.Caller, slug string) (*model.CertificateListResponse, error) {
	program, err := s.programRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errProgramNotFound
		}
		return nil, toAppError(err)
	}
	enrollment, err := s.enrollmentRepo.FindActiveByUserAndProgram(ctx, s.db, caller.UserID, program.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errNotEnrolled
		}
		return nil, toAppError(err)
	}
	phases, err := s.programRepo.ListPhases(ctx, s.db, program.ID)
	if err != nil {
		return nil, toAppError(err)
	}

	totalDays := TotalDays(program, s.cfg.App.DefaultTotalDays)
	currentDay := ComputeCurrentDay(enrollment.CurrentDay, totalDays)
	startedAt := enrollment.StartedAt

	certificates := make([]model.CertificateSummary, 0, len(phases)+1)
	for i, p := range phases {
		summary := model.CertificateSummary{
			ID:          fmt.Sprintf("phase-%d", i+1),
			Title:       fmt.Sprintf("%s Mastery", p.Name),
			Description: fmt.Sprintf("Completed Phase %d: %s (Days %d-%d)", i+1, p.Name, p.DayStart, p.DayEnd),
			IsEarned:    PhaseEarned(currentDay, p),
			PhaseNumber: i + 1,
		}
		if summary.IsEarned {
			summary.EarnedDate = &startedAt
		}
		certificates = append(certificates, summary)
	}

	programDone := model.CertificateSummary{
		ID:          "program-complete",
		Title:       fmt.Sprintf("%s -- Program Completion", program.Name),
		Description: fmt.Sprintf("Successfully completed the entire %d-day %s program.", totalDays, program.Name),
		IsEarned:    ProgramEarned(currentDay, totalDays),
		PhaseNumber: len(phases) + 1,
	}
	if programDone.IsEarned {
		programDone.EarnedDate = &startedAt
	}
	certificates = append(certificates, programDone)

	return &model.CertificateListResponse{
		Program:      newProgramSummary(program, totalDays, s.cfg),
		CurrentDay:   currentDay,
		UserName:     caller.DisplayName(),
		Certificates: certificates,
	}, nil
}

// credentialID は TH-{badge}-{受講IDの先頭8文字}-{phase} 形式
func (s *certificateService) credentialID(program *model.Program, enrollmentID uuid.UUID, phase string) string {
	badge := s.cfg.Certificate.DefaultBadge
	if program.Badge != nil && *program.Badge != "" {
		badge = *program.Badge
	}
	return fmt.Sprintf("TH-%s-%s-%s", badge, strings.ToUpper(enrollmentID.String()[:8]), strings.ToUpper(phase))
}

func (s *certificateService) color(program *model.Program) string {
	if program.Color != nil && *program.Color != "" {
		return *program.Color
	}
	return s.cfg.Certificate.DefaultColor
}
