package repository

import (
	"time"

	"go-doctor-schedule/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	// FindByDoctorInRange returns the doctor's slots dated within [start, end].
	FindByDoctorInRange(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Schedule, error)
	// BulkCreate inserts all slots in one statement; pass a transaction for atomicity.
	BulkCreate(db *gorm.DB, schedules []entity.Schedule) error
	FindAll(db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.Schedule, error)
}
