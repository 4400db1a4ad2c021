package repository

import (
	"context"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository/dao"
)

var ErrScheduleEntryNotFound = dao.ErrScheduleEntryNotFound

type ScheduleDAO interface {
	Insert(ctx context.Context, entry dao.ScheduleEntry) (dao.ScheduleEntry, error)
	FindAll(ctx context.Context) ([]dao.ScheduleEntry, error)
	Update(ctx context.Context, entry dao.ScheduleEntry) (dao.ScheduleEntry, error)
	Delete(ctx context.Context, id uint) error
}

type ScheduleRepository struct {
	dao ScheduleDAO
}

func NewScheduleRepository(dao ScheduleDAO) *ScheduleRepository {
	return &ScheduleRepository{
		dao: dao,
	}
}

func (r *ScheduleRepository) Create(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(entry))
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ScheduleRepository) FindAll(ctx context.Context) ([]domain.ScheduleEntry, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	entries := make([]domain.ScheduleEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, r.daoToDomain(e))
	}

	return entries, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, entry domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(entry))
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ScheduleRepository) domainToDAO(e domain.ScheduleEntry) dao.ScheduleEntry {
	return dao.ScheduleEntry{
		ID:        e.ID,
		Title:     e.Title,
		Location:  e.Location,
		Day:       e.Day,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		UpdatedAt: e.UpdatedAt,
	}
}

func (r *ScheduleRepository) daoToDomain(e dao.ScheduleEntry) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:        e.ID,
		Title:     e.Title,
		Location:  e.Location,
		Day:       e.Day,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		UpdatedAt: e.UpdatedAt,
	}
}
