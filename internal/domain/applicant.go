package domain

import "time"

// Application statuses. The progression is linear:
// waiting → (declined | waitlist | accepted) → userAccepted → fullyAccepted.
// Only the user self-confirm/withdraw action checks the current status;
// organizer updates may set any status directly.
const (
	StatusWaiting       = "waiting"
	StatusDeclined      = "declined"
	StatusWaitlist      = "waitlist"
	StatusAccepted      = "accepted"
	StatusUserAccepted  = "userAccepted"
	StatusFullyAccepted = "fullyAccepted"
)

// Statuses lists every application status, in progression order.
var Statuses = []string{
	StatusWaiting,
	StatusDeclined,
	StatusWaitlist,
	StatusAccepted,
	StatusUserAccepted,
	StatusFullyAccepted,
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// Applicant is one submitted registration, keyed by email.
type Applicant struct {
	Email string `json:"email"`

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

	ResumeLink       string `json:"resumeLink"`
	MoreAvailability string `json:"moreAvailability"`

	AppStatus string    `json:"appStatus"`
	CreatedAt time.Time `json:"createdAt"`
}

// EligibleForFoodGroup reports whether the applicant can be placed into a
// meal group: accepted and registered with an institutional email.
func (a Applicant) EligibleForFoodGroup(institutionDomain string) bool {
	return a.AppStatus == StatusAccepted && HasInstitutionalEmail(a.Email, institutionDomain)
}
