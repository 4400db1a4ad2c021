package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
)

type ScheduleEntryRequest struct {
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Day       string    `json:"day"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (req *ScheduleEntryRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Location, validation.Length(0, 100)),
		validation.Field(&req.Day, validation.Required),
		validation.Field(&req.StartTime, validation.Required),
		validation.Field(&req.EndTime, validation.Required),
	)
	if err != nil {
		return err
	}

	if !req.EndTime.After(req.StartTime) {
		return validation.NewError("validation_end_before_start", "endTime must be after startTime")
	}

	return nil
}

func (req *ScheduleEntryRequest) ToDomain(id uint) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:        id,
		Title:     req.Title,
		Location:  req.Location,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
}
