package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrScheduleEntryNotFound = errors.New("schedule entry not found")

type ScheduleEntry struct {
	ID uint `gorm:"primaryKey"`

	Title    string `gorm:"not null"`
	Location string
	Day      string `gorm:"not null"`

	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`

	UpdatedAt time.Time `gorm:"not null"`
}

type ScheduleDAO struct {
	db *gorm.DB
}

func NewScheduleDAO(db *gorm.DB) *ScheduleDAO {
	return &ScheduleDAO{
		db: db,
	}
}

func (d *ScheduleDAO) Insert(ctx context.Context, entry ScheduleEntry) (ScheduleEntry, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return ScheduleEntry{}, result.Error
	}

	return entry, nil
}

func (d *ScheduleDAO) FindAll(ctx context.Context) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry

	result := d.db.WithContext(ctx).Order("start_time").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *ScheduleDAO) Update(ctx context.Context, entry ScheduleEntry) (ScheduleEntry, error) {
	result := d.db.WithContext(ctx).
		Model(&ScheduleEntry{ID: entry.ID}).
		Select("title", "location", "day", "start_time", "end_time").
		Updates(&entry)
	if result.Error != nil {
		return ScheduleEntry{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ScheduleEntry{}, ErrScheduleEntryNotFound
	}

	var updated ScheduleEntry
	if err := d.db.WithContext(ctx).First(&updated, entry.ID).Error; err != nil {
		return ScheduleEntry{}, err
	}

	return updated, nil
}

func (d *ScheduleDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ScheduleEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleEntryNotFound
	}

	return nil
}
