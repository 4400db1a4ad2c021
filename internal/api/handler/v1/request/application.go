package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/questions"
)

var (
	uinExp        = regexp.MustCompile(`^[0-9]{9}$`)
	errInvalidUIN = errors.New("uin must be exactly 9 digits")
)

// ApplicationForm carries the raw registration answers. Validation is
// sequential and stops at the first violation, so the error message a
// submitter sees for a given form is always the same. The allowed answer
// sets are injected, not compiled in.
type ApplicationForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UIN       string `json:"uin"`

	Gender       string `json:"gender"`
	Year         string `json:"year"`
	Availability string `json:"availability"`
	ShirtSize    string `json:"shirtSize"`
	TeamPlan     string `json:"teamPlan"`
	JobType      string `json:"jobType"`

	DietaryRestriction []string `json:"dietaryRestriction"`
	PreWorkshops       []string `json:"preWorkshops"`
	HearAboutUs        []string `json:"hearAboutUs"`
	ProjectInterest    []string `json:"projectInterest"`
	MainGoals          []string `json:"mainGoals"`

	OtherDietaryRestriction string `json:"otherDietaryRestriction"`
	OtherJobType            string `json:"otherJobType"`
	OtherHearAboutUs        string `json:"otherHearAboutUs"`
	OtherProjectInterest    string `json:"otherProjectInterest"`
	OtherMainGoals          string `json:"otherMainGoals"`

	// Never validated for presence.
	ResumeLink       string `json:"resumeLink"`
	MoreAvailability string `json:"moreAvailability"`
}

// Validate checks the initial submission: the nine required scalars, the
// UIN format, the closed answer sets, the two always-required
// multi-selects and the conditional "Other" companions.
func (f *ApplicationForm) Validate(qs *questions.Set) error {
	return f.validate(qs, false)
}

// ValidateUpdate checks the extended profile-update variant, which also
// requires the hear-about, project-interest and main-goals selections.
func (f *ApplicationForm) ValidateUpdate(qs *questions.Set) error {
	return f.validate(qs, true)
}

func (f *ApplicationForm) validate(qs *questions.Set, extended bool) error {
	// Required scalars, checked in a fixed order.
	required := []struct {
		name  string
		value string
	}{
		{"firstName", f.FirstName},
		{"lastName", f.LastName},
		{"uin", f.UIN},
		{"gender", f.Gender},
		{"year", f.Year},
		{"availability", f.Availability},
		{"shirtSize", f.ShirtSize},
		{"teamPlan", f.TeamPlan},
		{"jobType", f.JobType},
	}
	for _, field := range required {
		if err := validation.Validate(field.value,
			validation.Required.Error(fmt.Sprintf("%v is required", field.name))); err != nil {
			return err
		}
	}

	if !uinExp.MatchString(f.UIN) {
		return errInvalidUIN
	}

	// Closed categorical answers.
	categorical := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"gender", f.Gender, qs.Gender},
		{"year", f.Year, qs.Year},
		{"availability", f.Availability, qs.Availability},
		{"shirtSize", f.ShirtSize, qs.ShirtSize},
		{"teamPlan", f.TeamPlan, qs.TeamPlan},
		{"jobType", f.JobType, qs.JobType},
	}
	for _, field := range categorical {
		if !questions.Contains(field.allowed, field.value) {
			return fmt.Errorf("invalid %v answer", field.name)
		}
	}

	// Multi-selects: at least one pick, every pick from the closed set.
	type multiField struct {
		name    string
		values  []string
		allowed []string
	}
	multi := []multiField{
		{"dietaryRestriction", f.DietaryRestriction, qs.DietaryRestriction},
		{"preWorkshops", f.PreWorkshops, qs.PreWorkshops},
	}
	if extended {
		multi = append(multi,
			multiField{"hearAboutUs", f.HearAboutUs, qs.HearAboutUs},
			multiField{"projectInterest", f.ProjectInterest, qs.ProjectInterest},
			multiField{"mainGoals", f.MainGoals, qs.MainGoals},
		)
	}
	for _, field := range multi {
		if len(field.values) == 0 {
			return fmt.Errorf("at least one %v answer is required", field.name)
		}
		for _, v := range field.values {
			if !questions.Contains(field.allowed, v) {
				return fmt.Errorf("invalid %v answer", field.name)
			}
		}
	}

	// "Other" answers unlock a required free-text companion.
	companions := []struct {
		name     string
		selected bool
		value    string
	}{
		{"otherDietaryRestriction", questions.Contains(f.DietaryRestriction, questions.Other), f.OtherDietaryRestriction},
		{"otherJobType", f.JobType == questions.Other, f.OtherJobType},
		{"otherHearAboutUs", extended && questions.Contains(f.HearAboutUs, questions.Other), f.OtherHearAboutUs},
		{"otherProjectInterest", extended && questions.Contains(f.ProjectInterest, questions.Other), f.OtherProjectInterest},
		{"otherMainGoals", extended && questions.Contains(f.MainGoals, questions.Other), f.OtherMainGoals},
	}
	for _, field := range companions {
		if field.selected && strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%v is required when Other is selected", field.name)
		}
	}

	return nil
}

// ToDomain copies the form into an applicant record for the given email.
func (f *ApplicationForm) ToDomain(email string) domain.Applicant {
	return domain.Applicant{
		Email:                   email,
		FirstName:               f.FirstName,
		LastName:                f.LastName,
		UIN:                     f.UIN,
		Gender:                  f.Gender,
		Year:                    f.Year,
		Availability:            f.Availability,
		ShirtSize:               f.ShirtSize,
		TeamPlan:                f.TeamPlan,
		JobType:                 f.JobType,
		DietaryRestriction:      f.DietaryRestriction,
		PreWorkshops:            f.PreWorkshops,
		HearAboutUs:             f.HearAboutUs,
		ProjectInterest:         f.ProjectInterest,
		MainGoals:               f.MainGoals,
		OtherDietaryRestriction: f.OtherDietaryRestriction,
		OtherJobType:            f.OtherJobType,
		OtherHearAboutUs:        f.OtherHearAboutUs,
		OtherProjectInterest:    f.OtherProjectInterest,
		OtherMainGoals:          f.OtherMainGoals,
		ResumeLink:              f.ResumeLink,
		MoreAvailability:        f.MoreAvailability,
	}
}
