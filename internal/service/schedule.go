package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository"
)

var ErrScheduleEntryNotFound = repository.ErrScheduleEntryNotFound

type ScheduleRepository interface {
	Create(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error)
	FindAll(ctx context.Context) ([]domain.ScheduleEntry, error)
	Update(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error)
	Delete(ctx context.Context, id uint) error
}

type ScheduleService struct {
	repo ScheduleRepository
}

func NewScheduleService(repo ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		repo: repo,
	}
}

func (s *ScheduleService) CreateEntry(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ScheduleService) GetEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return entries, nil
}

func (s *ScheduleService) UpdateEntry(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleEntryNotFound) {
			return domain.ScheduleEntry{}, ErrScheduleEntryNotFound
		}

		return domain.ScheduleEntry{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ScheduleService) DeleteEntry(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrScheduleEntryNotFound) {
			return ErrScheduleEntryNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
