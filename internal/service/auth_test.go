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

func newAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()

	repo := repository.NewUserRepository(dao.NewUserDAO(newTestDB(t)))

	return NewAuthService(repo), NewUserService(repo)
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	created, err := auth.Signup(ctx, domain.User{
		Email:    "ada@uic.edu",
		Password: "hunter2go1",
		Name:     "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "hunter2go1", created.Password, "password must be stored hashed")

	user, err := auth.Login(ctx, "ada@uic.edu", "hunter2go1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "Ada Lovelace", user.Name)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, domain.User{Email: "ada@uic.edu", Password: "hunter2go1", Name: "Ada"})
	require.NoError(t, err)

	_, err = auth.Signup(ctx, domain.User{Email: "ada@uic.edu", Password: "different9", Name: "Also Ada"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, domain.User{Email: "ada@uic.edu", Password: "hunter2go1", Name: "Ada"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, "ada@uic.edu", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Login(context.Background(), "ghost@uic.edu", "whatever1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_RoleRoundTrip(t *testing.T) {
	auth, users := newAuthService(t)
	ctx := context.Background()

	created, err := auth.Signup(ctx, domain.User{Email: "ada@uic.edu", Password: "hunter2go1", Name: "Ada"})
	require.NoError(t, err)

	roles, err := users.GetRoles(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Empty(t, roles)

	require.NoError(t, users.GrantRole(ctx, "ada@uic.edu", domain.RoleAdmin))
	require.NoError(t, users.GrantRole(ctx, "ada@uic.edu", domain.RoleWebDev))
	// Granting twice is a no-op, not an error.
	require.NoError(t, users.GrantRole(ctx, "ada@uic.edu", domain.RoleAdmin))

	user, err := users.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, user.HasRole(domain.RoleAdmin))
	assert.True(t, user.HasRole(domain.RoleWebDev))
	assert.False(t, user.HasRole(domain.RoleDirector))

	require.NoError(t, users.RevokeRole(ctx, "ada@uic.edu", domain.RoleAdmin))
	roles, err = users.GetRoles(ctx, "ada@uic.edu")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{domain.RoleWebDev: true}, roles)
}

func TestUserService_UnknownRoleRejected(t *testing.T) {
	_, users := newAuthService(t)
	ctx := context.Background()

	assert.ErrorIs(t, users.GrantRole(ctx, "ada@uic.edu", "superuser"), ErrUnknownRole)
	assert.ErrorIs(t, users.RevokeRole(ctx, "ada@uic.edu", "superuser"), ErrUnknownRole)
}
