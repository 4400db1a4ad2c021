package repository

import (
	"context"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindRoles(ctx context.Context, email string) ([]dao.RoleClaim, error)
	InsertRole(ctx context.Context, claim dao.RoleClaim) error
	DeleteRole(ctx context.Context, email, role string) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:    user.Email,
		Password: user.Password,
		Name:     user.Name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created, nil), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	claims, err := r.dao.FindRoles(ctx, found.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindRoles -> %w", err)
	}

	return r.daoToDomain(found, claims), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	claims, err := r.dao.FindRoles(ctx, found.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindRoles -> %w", err)
	}

	return r.daoToDomain(found, claims), nil
}

func (r *UserRepository) FindRoles(ctx context.Context, email string) (map[string]bool, error) {
	claims, err := r.dao.FindRoles(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRoles -> %w", err)
	}

	return claimsToRoles(claims), nil
}

func (r *UserRepository) GrantRole(ctx context.Context, email, role string) error {
	if err := r.dao.InsertRole(ctx, dao.RoleClaim{Email: email, Role: role}); err != nil {
		return fmt.Errorf("r.dao.InsertRole -> %w", err)
	}

	return nil
}

func (r *UserRepository) RevokeRole(ctx context.Context, email, role string) error {
	if err := r.dao.DeleteRole(ctx, email, role); err != nil {
		return fmt.Errorf("r.dao.DeleteRole -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User, claims []dao.RoleClaim) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		Roles:     claimsToRoles(claims),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func claimsToRoles(claims []dao.RoleClaim) map[string]bool {
	roles := make(map[string]bool, len(claims))
	for _, c := range claims {
		roles[c.Role] = true
	}

	return roles
}
