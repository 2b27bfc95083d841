package repository

import (
	"time"

	"go-doctor-schedule/internal/domain/entity"
	domainRepo "go-doctor-schedule/internal/domain/repository"
	"go-doctor-schedule/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Keeps each INSERT well under the Postgres bind parameter limit.
const scheduleInsertBatchSize = 500

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) FindByDoctorInRange(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.
		Select("id", "doctor_id", "day", "time_start", "time_finish", "quota", "status", "date").
		Where("doctor_id = ?", doctorID).
		Where("date BETWEEN ? AND ?", start.Format(scheduling.DateLayout), end.Format(scheduling.DateLayout)).
		Order("date ASC, time_start ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) BulkCreate(db *gorm.DB, schedules []entity.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return db.Omit("Doctor").CreateInBatches(&schedules, scheduleInsertBatchSize).Error
}

func (r *scheduleRepository) FindAll(db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	query := db.Preload("Doctor")

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.StartAt != "" {
			query = query.Where("date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("date <= ?", filter.EndAt)
		}
	}

	err := query.Order("date ASC, time_start ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
