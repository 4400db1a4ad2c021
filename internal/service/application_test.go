package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository/dao"
)

func newApplicationService(t *testing.T) *ApplicationService {
	t.Helper()

	db := newTestDB(t)

	return NewApplicationService(repository.NewApplicantRepository(dao.NewApplicantDAO(db)))
}

func testApplicant(email string) domain.Applicant {
	return domain.Applicant{
		Email:              email,
		FirstName:          "Ada",
		LastName:           "Lovelace",
		UIN:                "655311234",
		Gender:             "Woman",
		Year:               "Senior",
		Availability:       "Both days",
		ShirtSize:          "S",
		TeamPlan:           "I have a team",
		JobType:            "Full-time",
		DietaryRestriction: []string{"Vegetarian"},
		PreWorkshops:       []string{"Intro to Git"},
		HearAboutUs:        []string{"Friends"},
		ProjectInterest:    []string{"Web development"},
		MainGoals:          []string{"Learn new skills"},
	}
}

func TestApplicationService_Submit(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, testApplicant("ada@uic.edu"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaiting, created.AppStatus)

	found, err := svc.Get(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
	assert.Equal(t, domain.StatusWaiting, found.AppStatus)
}

func TestApplicationService_Submit_DuplicateKeepsFirstRecord(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	first := testApplicant("ada@uic.edu")
	_, err := svc.Submit(ctx, first)
	require.NoError(t, err)

	second := testApplicant("ada@uic.edu")
	second.FirstName = "Impostor"
	_, err = svc.Submit(ctx, second)
	assert.ErrorIs(t, err, ErrApplicationExists)

	found, err := svc.Get(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
}

func TestApplicationService_Submit_ForcesWaitingStatus(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	applicant := testApplicant("ada@uic.edu")
	applicant.AppStatus = domain.StatusAccepted

	created, err := svc.Submit(ctx, applicant)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaiting, created.AppStatus)
}

func TestApplicationService_Submit_BlanksUnusedCompanions(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	applicant := testApplicant("ada@uic.edu")
	applicant.DietaryRestriction = []string{"Vegan", "Other"}
	applicant.OtherDietaryRestriction = "Low sodium"
	applicant.OtherJobType = "stale text"
	applicant.OtherHearAboutUs = "stale text"

	created, err := svc.Submit(ctx, applicant)
	require.NoError(t, err)

	assert.Equal(t, "Low sodium", created.OtherDietaryRestriction)
	assert.Empty(t, created.OtherJobType)
	assert.Empty(t, created.OtherHearAboutUs)
}

func TestApplicationService_Update(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, testApplicant("ada@uic.edu"))
	require.NoError(t, err)

	changed := testApplicant("ada@uic.edu")
	changed.ShirtSize = "L"
	changed.JobType = "Other"
	changed.OtherJobType = "Founding my own startup"

	updated, err := svc.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "L", updated.ShirtSize)
	assert.Equal(t, "Founding my own startup", updated.OtherJobType)
	assert.Equal(t, created.AppStatus, updated.AppStatus)
}

func TestApplicationService_Update_NotFound(t *testing.T) {
	svc := newApplicationService(t)

	_, err := svc.Update(context.Background(), testApplicant("ghost@uic.edu"))
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationService_List(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testApplicant("ada@uic.edu"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, testApplicant("grace@uic.edu"))
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, "grace@uic.edu", domain.StatusAccepted))

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	accepted, err := svc.List(ctx, domain.StatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "grace@uic.edu", accepted[0].Email)

	_, err = svc.List(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplicationService_SetStatus(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testApplicant("ada@uic.edu"))
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, "ada@uic.edu", domain.StatusWaitlist))
	found, err := svc.Get(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitlist, found.AppStatus)

	assert.ErrorIs(t, svc.SetStatus(ctx, "ada@uic.edu", "bogus"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetStatus(ctx, "ghost@uic.edu", domain.StatusAccepted), ErrApplicationNotFound)
}

func TestApplicationService_ConfirmAndWithdraw(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testApplicant("ada@uic.edu"))
	require.NoError(t, err)

	// Still waiting, so neither self action is allowed.
	assert.ErrorIs(t, svc.Confirm(ctx, "ada@uic.edu"), ErrNotAccepted)
	assert.ErrorIs(t, svc.Withdraw(ctx, "ada@uic.edu"), ErrNotAccepted)

	require.NoError(t, svc.SetStatus(ctx, "ada@uic.edu", domain.StatusAccepted))
	require.NoError(t, svc.Confirm(ctx, "ada@uic.edu"))

	found, err := svc.Get(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUserAccepted, found.AppStatus)

	// Once confirmed the window is shut.
	assert.ErrorIs(t, svc.Withdraw(ctx, "ada@uic.edu"), ErrNotAccepted)

	_, err = svc.Submit(ctx, testApplicant("grace@uic.edu"))
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, "grace@uic.edu", domain.StatusAccepted))
	require.NoError(t, svc.Withdraw(ctx, "grace@uic.edu"))

	found, err = svc.Get(ctx, "grace@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, found.AppStatus)
}

func TestApplicationService_Stats_ZeroFillsEveryStatus(t *testing.T) {
	svc := newApplicationService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testApplicant("ada@uic.edu"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, testApplicant("grace@uic.edu"))
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, "grace@uic.edu", domain.StatusAccepted))

	counts, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Len(t, counts, len(domain.Statuses))
	assert.Equal(t, int64(1), counts[domain.StatusWaiting])
	assert.Equal(t, int64(1), counts[domain.StatusAccepted])
	assert.Equal(t, int64(0), counts[domain.StatusDeclined])
	assert.Equal(t, int64(0), counts[domain.StatusFullyAccepted])
}
