package repository

import (
	"context"
	"fmt"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
	"github.com/SparkHacks/spark-dashboard-sub000/internal/repository/dao"
)

type FoodGroupDAO interface {
	FindAll(ctx context.Context) ([]dao.FoodGroupAssignment, error)
	InsertBatch(ctx context.Context, assignments []dao.FoodGroupAssignment) error
	DeleteBatch(ctx context.Context, limit int) (int64, error)
}

type FoodGroupRepository struct {
	dao FoodGroupDAO
}

func NewFoodGroupRepository(dao FoodGroupDAO) *FoodGroupRepository {
	return &FoodGroupRepository{
		dao: dao,
	}
}

func (r *FoodGroupRepository) FindAll(ctx context.Context) ([]domain.FoodGroupAssignment, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	assignments := make([]domain.FoodGroupAssignment, 0, len(found))
	for _, a := range found {
		assignments = append(assignments, domain.FoodGroupAssignment{
			Email:      a.Email,
			Group:      a.GroupNum,
			AssignedAt: a.AssignedAt,
		})
	}

	return assignments, nil
}

func (r *FoodGroupRepository) CreateBatch(ctx context.Context, assignments []domain.FoodGroupAssignment) error {
	rows := make([]dao.FoodGroupAssignment, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, dao.FoodGroupAssignment{
			Email:      a.Email,
			GroupNum:   a.Group,
			AssignedAt: a.AssignedAt,
		})
	}

	if err := r.dao.InsertBatch(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return nil
}

func (r *FoodGroupRepository) DeleteBatch(ctx context.Context, limit int) (int64, error) {
	deleted, err := r.dao.DeleteBatch(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeleteBatch -> %w", err)
	}

	return deleted, nil
}
