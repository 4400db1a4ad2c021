package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresDB spins up a throwaway postgres container. The unique
// violation mapping in the DAOs depends on real postgres error codes, so
// these tests don't run against sqlite. Skipped when docker is not around.
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=testdb",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(180)

	var db *gorm.DB
	err = pool.Retry(func() error {
		dsn := fmt.Sprintf("host=localhost port=%v user=test password=secret dbname=testdb sslmode=disable",
			resource.GetPort("5432/tcp"))

		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestApplicantDAO_Insert_DuplicateEmail(t *testing.T) {
	db := newPostgresDB(t)
	d := NewApplicantDAO(db)
	ctx := context.Background()

	applicant := Applicant{
		Email:              "ada@uic.edu",
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
		PreWorkshops:       []string{"None"},
		AppStatus:          "waiting",
		CreatedAt:          time.Now(),
	}

	_, err := d.Insert(ctx, applicant)
	require.NoError(t, err)

	_, err = d.Insert(ctx, applicant)
	assert.ErrorIs(t, err, ErrApplicantExists)

	found, err := d.FindByEmail(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
	assert.Equal(t, []string{"Vegetarian"}, found.DietaryRestriction)
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	db := newPostgresDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	user := User{Email: "ada@uic.edu", Password: "hash", Name: "Ada"}

	_, err := d.Insert(ctx, user)
	require.NoError(t, err)

	_, err = d.Insert(ctx, user)
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestFoodGroupDAO_InsertBatch_SkipsExisting(t *testing.T) {
	db := newPostgresDB(t)
	d := NewFoodGroupDAO(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, d.InsertBatch(ctx, []FoodGroupAssignment{
		{Email: "a@uic.edu", GroupNum: 1, AssignedAt: now},
	}))

	// A second batch containing an already assigned email keeps the
	// original row and inserts the rest.
	require.NoError(t, d.InsertBatch(ctx, []FoodGroupAssignment{
		{Email: "a@uic.edu", GroupNum: 4, AssignedAt: now},
		{Email: "b@uic.edu", GroupNum: 2, AssignedAt: now},
	}))

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byEmail := make(map[string]int)
	for _, a := range all {
		byEmail[a.Email] = a.GroupNum
	}
	assert.Equal(t, 1, byEmail["a@uic.edu"])
	assert.Equal(t, 2, byEmail["b@uic.edu"])
}
