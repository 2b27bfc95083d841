package converter

import (
	"go-doctor-schedule/internal/delivery/dto"
	"go-doctor-schedule/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		CreatedAt: doctor.CreatedAt,
		UpdatedAt: doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToDetailResponse includes the doctor's schedules, without repeating the doctor name on each
func DoctorToDetailResponse(doctor *entity.Doctor) *dto.DoctorDetailResponse {
	schedules := make([]dto.ScheduleResponse, len(doctor.Schedules))
	for i := range doctor.Schedules {
		schedules[i] = ScheduleToResponse(&doctor.Schedules[i], "")
		schedules[i].DoctorName = ""
	}
	return &dto.DoctorDetailResponse{
		DoctorResponse: DoctorToResponse(doctor),
		CountSchedules: len(schedules),
		Schedules:      schedules,
	}
}
