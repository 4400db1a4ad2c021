package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodGroupAssignment struct {
	Email      string    `gorm:"primaryKey"`
	GroupNum   int       `gorm:"column:group_num;not null"`
	AssignedAt time.Time `gorm:"not null"`
}

type FoodGroupDAO struct {
	db *gorm.DB
}

func NewFoodGroupDAO(db *gorm.DB) *FoodGroupDAO {
	return &FoodGroupDAO{
		db: db,
	}
}

func (d *FoodGroupDAO) FindAll(ctx context.Context) ([]FoodGroupAssignment, error) {
	var assignments []FoodGroupAssignment

	result := d.db.WithContext(ctx).Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}

// InsertBatch commits every assignment in one transaction, so a failure
// leaves no partial batch behind. Rows whose email already holds an
// assignment are skipped rather than moved, which also makes a concurrent
// duplicate run harmless.
func (d *FoodGroupDAO) InsertBatch(ctx context.Context, assignments []FoodGroupAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&assignments)

	return result.Error
}

// DeleteBatch removes up to limit assignments and reports how many went.
// Callers loop until it returns 0.
func (d *FoodGroupDAO) DeleteBatch(ctx context.Context, limit int) (int64, error) {
	var emails []string

	result := d.db.WithContext(ctx).
		Model(&FoodGroupAssignment{}).
		Limit(limit).
		Pluck("email", &emails)
	if result.Error != nil {
		return 0, result.Error
	}
	if len(emails) == 0 {
		return 0, nil
	}

	result = d.db.WithContext(ctx).
		Where("email IN ?", emails).
		Delete(&FoodGroupAssignment{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
