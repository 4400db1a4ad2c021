package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrApplicantExists   = errors.New("application already exists")
	ErrApplicantNotFound = errors.New("application not found")
)

// Applicant is one registration row, keyed by email. Multi-select answers
// are stored as JSON arrays.
type Applicant struct {
	Email string `gorm:"primaryKey"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	UIN       string `gorm:"column:uin;not null"`

	Gender       string `gorm:"not null"`
	Year         string `gorm:"not null"`
	Availability string `gorm:"not null"`
	ShirtSize    string `gorm:"not null"`
	TeamPlan     string `gorm:"not null"`
	JobType      string `gorm:"not null"`

	DietaryRestriction []string `gorm:"serializer:json"`
	PreWorkshops       []string `gorm:"serializer:json"`
	HearAboutUs        []string `gorm:"serializer:json"`
	ProjectInterest    []string `gorm:"serializer:json"`
	MainGoals          []string `gorm:"serializer:json"`

	OtherDietaryRestriction string
	OtherJobType            string
	OtherHearAboutUs        string
	OtherProjectInterest    string
	OtherMainGoals          string

	ResumeLink       string
	MoreAvailability string

	AppStatus string `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

type ApplicantDAO struct {
	db *gorm.DB
}

func NewApplicantDAO(db *gorm.DB) *ApplicantDAO {
	return &ApplicantDAO{
		db: db,
	}
}

func (d *ApplicantDAO) Insert(ctx context.Context, applicant Applicant) (Applicant, error) {
	result := d.db.WithContext(ctx).Create(&applicant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Applicant{}, ErrApplicantExists
		}

		return Applicant{}, result.Error
	}

	return applicant, nil
}

func (d *ApplicantDAO) FindByEmail(ctx context.Context, email string) (Applicant, error) {
	var applicant Applicant

	result := d.db.WithContext(ctx).First(&applicant, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Applicant{}, ErrApplicantNotFound
		}

		return Applicant{}, result.Error
	}

	return applicant, nil
}

func (d *ApplicantDAO) FindAll(ctx context.Context) ([]Applicant, error) {
	var applicants []Applicant

	result := d.db.WithContext(ctx).Order("created_at").Find(&applicants)
	if result.Error != nil {
		return nil, result.Error
	}

	return applicants, nil
}

func (d *ApplicantDAO) FindByStatus(ctx context.Context, status string) ([]Applicant, error) {
	var applicants []Applicant

	result := d.db.WithContext(ctx).
		Where("app_status = ?", status).
		Order("created_at").
		Find(&applicants)
	if result.Error != nil {
		return nil, result.Error
	}

	return applicants, nil
}

// Update rewrites every profile column of an existing row. The email key,
// the status and the server-assigned creation timestamp are never touched.
func (d *ApplicantDAO) Update(ctx context.Context, applicant Applicant) (Applicant, error) {
	result := d.db.WithContext(ctx).
		Model(&Applicant{Email: applicant.Email}).
		Select("*").
		Omit("email", "app_status", "created_at").
		Updates(&applicant)
	if result.Error != nil {
		return Applicant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Applicant{}, ErrApplicantNotFound
	}

	return d.FindByEmail(ctx, applicant.Email)
}

func (d *ApplicantDAO) UpdateStatus(ctx context.Context, email, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Applicant{Email: email}).
		Update("app_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicantNotFound
	}

	return nil
}

// CountByStatus returns per-status totals for the dashboard summary.
func (d *ApplicantDAO) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		AppStatus string
		Total     int64
	}

	var rows []row
	result := d.db.WithContext(ctx).
		Model(&Applicant{}).
		Select("app_status, count(*) as total").
		Group("app_status").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.AppStatus] = r.Total
	}

	return counts, nil
}
