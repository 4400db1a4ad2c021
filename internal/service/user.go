package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
)

var ErrUnknownRole = errors.New("unknown role")

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindRoles(ctx context.Context, email string) (map[string]bool, error)
	GrantRole(ctx context.Context, email, role string) error
	RevokeRole(ctx context.Context, email, role string) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetRoles(ctx context.Context, email string) (map[string]bool, error) {
	roles, err := s.repo.FindRoles(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRoles -> %w", err)
	}

	return roles, nil
}

func (s *UserService) GrantRole(ctx context.Context, email, role string) error {
	if !domain.ValidRole(role) {
		return ErrUnknownRole
	}

	if err := s.repo.GrantRole(ctx, email, role); err != nil {
		return fmt.Errorf("s.repo.GrantRole -> %w", err)
	}

	return nil
}

func (s *UserService) RevokeRole(ctx context.Context, email, role string) error {
	if !domain.ValidRole(role) {
		return ErrUnknownRole
	}

	if err := s.repo.RevokeRole(ctx, email, role); err != nil {
		return fmt.Errorf("s.repo.RevokeRole -> %w", err)
	}

	return nil
}
