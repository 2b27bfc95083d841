package repository

import (
	"testing"
	"time"

	"go-doctor-schedule/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without a server; the DSN is never dialed.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=app dbname=schedules sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestBulkCreate_SplitsLargeInserts(t *testing.T) {
	db := newDryRunDB(t)

	var batches []int
	err := db.Callback().Create().After("gorm:create").Register("test:count_batches", func(tx *gorm.DB) {
		batches = append(batches, tx.Statement.ReflectValue.Len())
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	doctorID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	schedules := make([]entity.Schedule, 2*scheduleInsertBatchSize+1)
	for i := range schedules {
		schedules[i] = entity.Schedule{
			DoctorID:   doctorID,
			Day:        "monday",
			TimeStart:  "09:00",
			TimeFinish: "12:00",
			Quota:      5,
			Status:     true,
			Date:       start.AddDate(0, 0, 7*i),
		}
	}

	if err := NewScheduleRepository().BulkCreate(db, schedules); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batches) != 3 {
		t.Fatalf("expected 3 insert statements, got %d (%v)", len(batches), batches)
	}
	total := 0
	for _, n := range batches {
		if n > scheduleInsertBatchSize {
			t.Errorf("batch of %d rows exceeds %d", n, scheduleInsertBatchSize)
		}
		total += n
	}
	if total != len(schedules) {
		t.Errorf("inserted %d rows, want %d", total, len(schedules))
	}
}

func TestBulkCreate_Empty(t *testing.T) {
	if err := NewScheduleRepository().BulkCreate(newDryRunDB(t), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
