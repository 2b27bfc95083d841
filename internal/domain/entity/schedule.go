package entity

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is one dated availability slot of a doctor.
// Slots of the same doctor on the same date must not overlap; this is
// enforced when slots are generated, not by a database constraint.
type Schedule struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_schedules_doctor_date" json:"doctor_id"`
	Day        string    `gorm:"type:varchar(20);not null" json:"day"`
	TimeStart  string    `gorm:"type:varchar(5);not null" json:"time_start"`
	TimeFinish string    `gorm:"type:varchar(5);not null" json:"time_finish"`
	Quota      int       `gorm:"not null;default:0" json:"quota"`
	Status     bool      `gorm:"not null;default:true" json:"status"`
	Date       time.Time `gorm:"type:date;not null;index:idx_schedules_doctor_date" json:"date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}
