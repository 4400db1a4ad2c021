package repository

import (
	"context"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository/dao"
)

var (
	ErrApplicantExists   = dao.ErrApplicantExists
	ErrApplicantNotFound = dao.ErrApplicantNotFound
)

type ApplicantDAO interface {
	Insert(ctx context.Context, applicant dao.Applicant) (dao.Applicant, error)
	FindByEmail(ctx context.Context, email string) (dao.Applicant, error)
	FindAll(ctx context.Context) ([]dao.Applicant, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Applicant, error)
	Update(ctx context.Context, applicant dao.Applicant) (dao.Applicant, error)
	UpdateStatus(ctx context.Context, email, status string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type ApplicantRepository struct {
	dao ApplicantDAO
}

func NewApplicantRepository(dao ApplicantDAO) *ApplicantRepository {
	return &ApplicantRepository{
		dao: dao,
	}
}

func (r *ApplicantRepository) Create(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(applicant))
	if err != nil {
		return domain.Applicant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ApplicantRepository) FindByEmail(ctx context.Context, email string) (domain.Applicant, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Applicant{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ApplicantRepository) FindAll(ctx context.Context) ([]domain.Applicant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *ApplicantRepository) FindByStatus(ctx context.Context, status string) ([]domain.Applicant, error) {
	found, err := r.dao.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *ApplicantRepository) Update(ctx context.Context, applicant domain.Applicant) (domain.Applicant, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(applicant))
	if err != nil {
		return domain.Applicant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ApplicantRepository) UpdateStatus(ctx context.Context, email, status string) error {
	if err := r.dao.UpdateStatus(ctx, email, status); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *ApplicantRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	return counts, nil
}

func (r *ApplicantRepository) domainToDAO(a domain.Applicant) dao.Applicant {
	return dao.Applicant{
		Email:                   a.Email,
		FirstName:               a.FirstName,
		LastName:                a.LastName,
		UIN:                     a.UIN,
		Gender:                  a.Gender,
		Year:                    a.Year,
		Availability:            a.Availability,
		ShirtSize:               a.ShirtSize,
		TeamPlan:                a.TeamPlan,
		JobType:                 a.JobType,
		DietaryRestriction:      a.DietaryRestriction,
		PreWorkshops:            a.PreWorkshops,
		HearAboutUs:             a.HearAboutUs,
		ProjectInterest:         a.ProjectInterest,
		MainGoals:               a.MainGoals,
		OtherDietaryRestriction: a.OtherDietaryRestriction,
		OtherJobType:            a.OtherJobType,
		OtherHearAboutUs:        a.OtherHearAboutUs,
		OtherProjectInterest:    a.OtherProjectInterest,
		OtherMainGoals:          a.OtherMainGoals,
		ResumeLink:              a.ResumeLink,
		MoreAvailability:        a.MoreAvailability,
		AppStatus:               a.AppStatus,
		CreatedAt:               a.CreatedAt,
	}
}

func (r *ApplicantRepository) daoToDomain(a dao.Applicant) domain.Applicant {
	return domain.Applicant{
		Email:                   a.Email,
		FirstName:               a.FirstName,
		LastName:                a.LastName,
		UIN:                     a.UIN,
		Gender:                  a.Gender,
		Year:                    a.Year,
		Availability:            a.Availability,
		ShirtSize:               a.ShirtSize,
		TeamPlan:                a.TeamPlan,
		JobType:                 a.JobType,
		DietaryRestriction:      a.DietaryRestriction,
		PreWorkshops:            a.PreWorkshops,
		HearAboutUs:             a.HearAboutUs,
		ProjectInterest:         a.ProjectInterest,
		MainGoals:               a.MainGoals,
		OtherDietaryRestriction: a.OtherDietaryRestriction,
		OtherJobType:            a.OtherJobType,
		OtherHearAboutUs:        a.OtherHearAboutUs,
		OtherProjectInterest:    a.OtherProjectInterest,
		OtherMainGoals:          a.OtherMainGoals,
		ResumeLink:              a.ResumeLink,
		MoreAvailability:        a.MoreAvailability,
		AppStatus:               a.AppStatus,
		CreatedAt:               a.CreatedAt,
	}
}

func (r *ApplicantRepository) daosToDomains(found []dao.Applicant) []domain.Applicant {
	applicants := make([]domain.Applicant, 0, len(found))
	for _, a := range found {
		applicants = append(applicants, r.daoToDomain(a))
	}

	return applicants
}
