package dto

import (
	"time"

	"github.com/google/uuid"
)

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	CountSchedules int                `json:"count_schedules"`
	Schedules      []ScheduleResponse `json:"schedules"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
