package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/questions"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository"
)

var (
	ErrApplicationExists   = repository.ErrApplicantExists
	ErrApplicationNotFound = repository.ErrApplicantNotFound
	ErrNotAccepted         = errors.New("application is not in the accepted state")
	ErrInvalidStatus       = errors.New("invalid application status")
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error)
	FindByEmail(ctx context.Context, email string) (domain.Applicant, error)
	FindAll(ctx context.Context) ([]domain.Applicant, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Applicant, error)
	Update(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error)
	UpdateStatus(ctx context.Context, email, status string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type ApplicationService struct {
	repo ApplicantRepository
}

func NewApplicationService(repo ApplicantRepository) *ApplicationService {
	return &ApplicationService{
		repo: repo,
	}
}

// Submit creates the applicant's one and only record. A second submission
// for the same email is rejected before any write, so the first record is
// never mutated. Validation has already happened in the request layer;
// here only the existence check and the companion-field cleanup remain.
func (s *ApplicationService) Submit(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error) {
	_, err := s.repo.FindByEmail(ctx, applicant.Email)
	if err == nil {
		return domain.Applicant{}, ErrApplicationExists
	}
	if !errors.Is(err, repository.ErrApplicantNotFound) {
		return domain.Applicant{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	applicant.AppStatus = domain.StatusWaiting
	clearUnusedCompanions(&applicant)

	created, err := s.repo.Create(ctx, applicant)
	if err != nil {
		if errors.Is(err, repository.ErrApplicantExists) {
			return domain.Applicant{}, ErrApplicationExists
		}

		return domain.Applicant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update rewrites the profile fields of an existing application. Status
// and creation timestamp stay untouched.
func (s *ApplicationService) Update(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error) {
	clearUnusedCompanions(&applicant)

	updated, err := s.repo.Update(ctx, applicant)
	if err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return domain.Applicant{}, ErrApplicationNotFound
		}

		return domain.Applicant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ApplicationService) Get(ctx context.Context, email string) (domain.Applicant, error) {
	applicant, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return domain.Applicant{}, ErrApplicationNotFound
		}

		return domain.Applicant{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return applicant, nil
}

// List returns every application, or only those in the given status when
// status is non-empty.
func (s *ApplicationService) List(ctx context.Context, status string) ([]domain.Applicant, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var (
		applicants []domain.Applicant
		err        error
	)
	if status == "" {
		applicants, err = s.repo.FindAll(ctx)
	} else {
		applicants, err = s.repo.FindByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return applicants, nil
}

// SetStatus is the organizer decision: any known status may be set
// directly, no transition graph is enforced.
func (s *ApplicationService) SetStatus(ctx context.Context, email, status string) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, email, status); err != nil {
		if errors.Is(err, repository.ErrApplicantNotFound) {
			return ErrApplicationNotFound
		}

		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return nil
}

// Confirm is the applicant's own "I'm coming" action. It only applies to
// applications currently in the accepted state.
func (s *ApplicationService) Confirm(ctx context.Context, email string) error {
	return s.selfDecide(ctx, email, domain.StatusUserAccepted)
}

// Withdraw is the applicant's own decline, with the same accepted-only
// precondition as Confirm.
func (s *ApplicationService) Withdraw(ctx context.Context, email string) error {
	return s.selfDecide(ctx, email, domain.StatusDeclined)
}

func (s *ApplicationService) selfDecide(ctx context.Context, email, status string) error {
	applicant, err := s.Get(ctx, email)
	if err != nil {
		return err
	}

	if applicant.AppStatus != domain.StatusAccepted {
		return ErrNotAccepted
	}

	if err := s.repo.UpdateStatus(ctx, email, status); err != nil {
		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return nil
}

func (s *ApplicationService) Stats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountByStatus -> %w", err)
	}

	// Zero out missing statuses so the dashboard always sees every bucket.
	for _, status := range domain.Statuses {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}

	return counts, nil
}

// clearUnusedCompanions blanks every "other" free-text field whose gating
// answer does not contain "Other", so stale text never persists.
func clearUnusedCompanions(a *domain.Applicant) {
	if !questions.Contains(a.DietaryRestriction, questions.Other) {
		a.OtherDietaryRestriction = ""
	}
	if a.JobType != questions.Other {
		a.OtherJobType = ""
	}
	if !questions.Contains(a.HearAboutUs, questions.Other) {
		a.OtherHearAboutUs = ""
	}
	if !questions.Contains(a.ProjectInterest, questions.Other) {
		a.OtherProjectInterest = ""
	}
	if !questions.Contains(a.MainGoals, questions.Other) {
		a.OtherMainGoals = ""
	}
}
