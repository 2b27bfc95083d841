package entity

import (
	"time"

	"github.com/google/uuid"
)

const EventSchedulesCreated = "schedule.created"

type ScheduleEventSlot struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	TimeStart  string `json:"time_start"`
	TimeFinish string `json:"time_finish"`
	Quota      int    `json:"quota"`
	Status     bool   `json:"status"`
}

// SchedulesCreatedEvent is published once per committed bulk creation.
type SchedulesCreatedEvent struct {
	DoctorID   uuid.UUID           `json:"doctor_id"`
	DoctorName string              `json:"doctor_name"`
	Day        string              `json:"day"`
	DateRange  string              `json:"date_range"`
	Slots      []ScheduleEventSlot `json:"slots"`
	CreatedBy  *uuid.UUID          `json:"created_by,omitempty"`
	OccurredAt time.Time           `json:"occurred_at"`
}
