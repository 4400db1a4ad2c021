package domain

import "time"

// ScheduleEntry is one row on the live event schedule shown on the
// dashboard during the hackathon.
type ScheduleEntry struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Day       string    `json:"day"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	UpdatedAt time.Time `json:"updatedAt"`
}
