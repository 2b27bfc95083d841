package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Request DTOs

// CreateRecurringScheduleRequest asks for one slot on every matching weekday
// of DateRange. Quota and Status stay raw so their JSON types can be checked.
type CreateRecurringScheduleRequest struct {
	DoctorID   uuid.UUID       `json:"doctor_id" validate:"required"`
	Day        string          `json:"day" validate:"required"`
	TimeStart  string          `json:"time_start" validate:"required"`  // Format: HH:MM
	TimeFinish string          `json:"time_finish" validate:"required"` // Format: HH:MM
	Quota      json.RawMessage `json:"quota"`
	Status     json.RawMessage `json:"status"`
	DateRange  string          `json:"date_range" validate:"required"` // Format: YYYY-MM-DD to YYYY-MM-DD
}

// Response DTOs

type ScheduleResponse struct {
	ID         int       `json:"id"`
	DoctorID   uuid.UUID `json:"doctor_id"`
	Day        string    `json:"day"`
	TimeStart  string    `json:"time_start"`
	TimeFinish string    `json:"time_finish"`
	Quota      int       `json:"quota"`
	Status     bool      `json:"status"`
	DoctorName string    `json:"doctor_name,omitempty"`
	Date       string    `json:"date"`
}

// BulkScheduleResponse is the outcome of a recurring creation. Body is empty
// when no slot survived conflict checks.
type BulkScheduleResponse struct {
	Message string             `json:"message"`
	Body    []ScheduleResponse `json:"body,omitempty"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
