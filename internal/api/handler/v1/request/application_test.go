package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/questions"
)

func testQuestionSet() *questions.Set {
	return &questions.Set{
		Gender:             []string{"Male", "Female", "Non-binary", "Prefer not to say", "Other"},
		Year:               []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate"},
		Availability:       []string{"Friday only", "Saturday only", "Both days"},
		ShirtSize:          []string{"S", "M", "L", "XL"},
		TeamPlan:           []string{"I have a team", "I need a team"},
		JobType:            []string{"Internship", "Full-time", "Not looking", "Other"},
		DietaryRestriction: []string{"None", "Vegetarian", "Vegan", "Other"},
		PreWorkshops:       []string{"Intro to Git", "Intro to Web Development", "None"},
		HearAboutUs:        []string{"Instagram", "Friends", "Other"},
		ProjectInterest:    []string{"Web Development", "AI/ML", "Other"},
		MainGoals:          []string{"Learn new skills", "Have fun", "Other"},
	}
}

func validForm() ApplicationForm {
	return ApplicationForm{
		FirstName:          "Ada",
		LastName:           "Lovelace",
		UIN:                "123456789",
		Gender:             "Female",
		Year:               "Junior",
		Availability:       "Both days",
		ShirtSize:          "M",
		TeamPlan:           "I need a team",
		JobType:            "Internship",
		DietaryRestriction: []string{"Vegetarian"},
		PreWorkshops:       []string{"Intro to Git"},
		HearAboutUs:        []string{"Instagram"},
		ProjectInterest:    []string{"AI/ML"},
		MainGoals:          []string{"Learn new skills"},
	}
}

func TestApplicationForm_Validate_RequiredScalars(t *testing.T) {
	tests := []struct {
		field string
		blank func(f *ApplicationForm)
	}{
		{"firstName", func(f *ApplicationForm) { f.FirstName = "" }},
		{"lastName", func(f *ApplicationForm) { f.LastName = "" }},
		{"uin", func(f *ApplicationForm) { f.UIN = "" }},
		{"gender", func(f *ApplicationForm) { f.Gender = "" }},
		{"year", func(f *ApplicationForm) { f.Year = "" }},
		{"availability", func(f *ApplicationForm) { f.Availability = "" }},
		{"shirtSize", func(f *ApplicationForm) { f.ShirtSize = "" }},
		{"teamPlan", func(f *ApplicationForm) { f.TeamPlan = "" }},
		{"jobType", func(f *ApplicationForm) { f.JobType = "" }},
	}

	qs := testQuestionSet()
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			form := validForm()
			tt.blank(&form)

			err := form.Validate(qs)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestApplicationForm_Validate_UIN(t *testing.T) {
	qs := testQuestionSet()

	bad := []string{"12345", "abcdefghi", "1234567890", "12345678a", "12 345678"}
	for _, uin := range bad {
		form := validForm()
		form.UIN = uin

		err := form.Validate(qs)

		require.Error(t, err, "uin %q should fail", uin)
		assert.Contains(t, err.Error(), "uin")
	}

	form := validForm()
	form.UIN = "123456789"
	assert.NoError(t, form.Validate(qs))
}

func TestApplicationForm_Validate_ClosedAnswerSets(t *testing.T) {
	qs := testQuestionSet()

	form := validForm()
	form.Gender = "Attack Helicopter"
	err := form.Validate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gender")

	form = validForm()
	form.DietaryRestriction = []string{"Vegetarian", "Pescatarian"}
	err = form.Validate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dietaryRestriction")
}

func TestApplicationForm_Validate_MultiSelectRequired(t *testing.T) {
	qs := testQuestionSet()

	form := validForm()
	form.DietaryRestriction = nil
	err := form.Validate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dietaryRestriction")

	form = validForm()
	form.PreWorkshops = []string{}
	err = form.Validate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preWorkshops")
}

func TestApplicationForm_Validate_OtherCompanions(t *testing.T) {
	qs := testQuestionSet()

	form := validForm()
	form.DietaryRestriction = []string{"Other"}
	form.OtherDietaryRestriction = ""
	err := form.Validate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "otherDietaryRestriction")

	form.OtherDietaryRestriction = "Kosher"
	assert.NoError(t, form.Validate(qs))

	form = validForm()
	form.JobType = "Other"
	form.OtherJobType = ""
	err = form.Validate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "otherJobType")

	form.OtherJobType = "Apprenticeship"
	assert.NoError(t, form.Validate(qs))
}

func TestApplicationForm_Validate_OptionalFieldsNeverChecked(t *testing.T) {
	form := validForm()
	form.ResumeLink = ""
	form.MoreAvailability = ""

	assert.NoError(t, form.Validate(testQuestionSet()))
}

func TestApplicationForm_ValidateUpdate_ExtendedMultiSelects(t *testing.T) {
	qs := testQuestionSet()

	form := validForm()
	require.NoError(t, form.Validate(qs), "base rules should pass")

	form.HearAboutUs = nil
	err := form.ValidateUpdate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hearAboutUs")

	form = validForm()
	form.MainGoals = []string{"Other"}
	form.OtherMainGoals = ""
	err = form.ValidateUpdate(qs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "otherMainGoals")

	// The base variant ignores the extended selections entirely.
	form = validForm()
	form.HearAboutUs = nil
	form.ProjectInterest = nil
	form.MainGoals = nil
	assert.NoError(t, form.Validate(qs))
}

func TestApplicationForm_Validate_FirstFailureWins(t *testing.T) {
	form := validForm()
	form.FirstName = ""
	form.UIN = "oops"
	form.Gender = "nope"

	err := form.Validate(testQuestionSet())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "firstName")
}

func TestApplicationForm_Validate_InjectedSets(t *testing.T) {
	// The same form passes or fails purely based on the injected sets.
	form := validForm()
	form.ShirtSize = "XXL"

	require.Error(t, form.Validate(testQuestionSet()))

	qs := testQuestionSet()
	qs.ShirtSize = append(qs.ShirtSize, "XXL")
	assert.NoError(t, form.Validate(qs))
}
