package converter

import (
	"go-doctor-schedule/internal/delivery/dto"
	"go-doctor-schedule/internal/domain/entity"
	"go-doctor-schedule/internal/scheduling"
)

// ScheduleToResponse converts a Schedule entity to ScheduleResponse DTO.
// doctorName overrides the preloaded doctor when non-empty.
func ScheduleToResponse(schedule *entity.Schedule, doctorName string) dto.ScheduleResponse {
	if doctorName == "" {
		doctorName = schedule.Doctor.Name
	}
	return dto.ScheduleResponse{
		ID:         schedule.ID,
		DoctorID:   schedule.DoctorID,
		Day:        schedule.Day,
		TimeStart:  schedule.TimeStart,
		TimeFinish: schedule.TimeFinish,
		Quota:      schedule.Quota,
		Status:     schedule.Status,
		DoctorName: doctorName,
		Date:       schedule.Date.Format(scheduling.DateLayout),
	}
}

// SchedulesToResponses converts a slice of Schedule entities to ScheduleResponse DTOs
func SchedulesToResponses(schedules []entity.Schedule, doctorName string) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = ScheduleToResponse(&schedules[i], doctorName)
	}
	return responses
}

// CandidateToEntity turns an accepted candidate into a Schedule ready to insert.
func CandidateToEntity(candidate scheduling.Candidate) entity.Schedule {
	return entity.Schedule{
		DoctorID:   candidate.DoctorID,
		Day:        candidate.Day,
		TimeStart:  candidate.TimeStart,
		TimeFinish: candidate.TimeFinish,
		Quota:      candidate.Quota,
		Status:     candidate.Status,
		Date:       candidate.Date,
	}
}

// SchedulesToBookedSlots keeps what conflict checks need from stored slots,
// with dates normalised to YYYY-MM-DD.
func SchedulesToBookedSlots(schedules []entity.Schedule) []scheduling.BookedSlot {
	booked := make([]scheduling.BookedSlot, len(schedules))
	for i, schedule := range schedules {
		booked[i] = scheduling.BookedSlot{
			Date:       schedule.Date.Format(scheduling.DateLayout),
			TimeStart:  schedule.TimeStart,
			TimeFinish: schedule.TimeFinish,
		}
	}
	return booked
}

// SchedulesToEventSlots converts persisted slots for the created event payload.
func SchedulesToEventSlots(schedules []entity.Schedule) []entity.ScheduleEventSlot {
	slots := make([]entity.ScheduleEventSlot, len(schedules))
	for i, schedule := range schedules {
		slots[i] = entity.ScheduleEventSlot{
			ID:         schedule.ID,
			Date:       schedule.Date.Format(scheduling.DateLayout),
			TimeStart:  schedule.TimeStart,
			TimeFinish: schedule.TimeFinish,
			Quota:      schedule.Quota,
			Status:     schedule.Status,
		}
	}
	return slots
}
