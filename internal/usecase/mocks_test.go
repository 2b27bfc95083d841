package usecase

import (
	"context"
	"io"
	"time"

	"go-doctor-schedule/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// mockUnitOfWork commits the slots staged by mockScheduleRepo only when the
// transaction function succeeds.
type mockUnitOfWork struct {
	scheduleRepo *mockScheduleRepo
	transactions int
}

func (m *mockUnitOfWork) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (m *mockUnitOfWork) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	m.transactions++
	m.scheduleRepo.staged = nil
	err := fn(nil)
	if err == nil {
		m.scheduleRepo.stored = append(m.scheduleRepo.stored, m.scheduleRepo.staged...)
	}
	m.scheduleRepo.staged = nil
	return err
}

type mockScheduleRepo struct {
	existing   []entity.Schedule
	findErr    error
	bulkErr    error
	bulkCalls  int
	staged     []entity.Schedule
	stored     []entity.Schedule
	nextID     int
	lastFilter *entity.ScheduleFilter
	rangeStart time.Time
	rangeEnd   time.Time
}

func (m *mockScheduleRepo) FindByDoctorInRange(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Schedule, error) {
	m.rangeStart, m.rangeEnd = start, end
	if m.findErr != nil {
		return nil, m.findErr
	}
	var found []entity.Schedule
	for _, s := range m.existing {
		if s.DoctorID == doctorID && !s.Date.Before(start) && !s.Date.After(end) {
			found = append(found, s)
		}
	}
	return found, nil
}

func (m *mockScheduleRepo) BulkCreate(db *gorm.DB, schedules []entity.Schedule) error {
	m.bulkCalls++
	if m.bulkErr != nil {
		return m.bulkErr
	}
	for i := range schedules {
		m.nextID++
		schedules[i].ID = m.nextID
	}
	m.staged = append(m.staged, schedules...)
	return nil
}

func (m *mockScheduleRepo) FindAll(db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.Schedule, error) {
	m.lastFilter = filter
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.existing, nil
}

type mockDoctorRepo struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (m *mockDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.doctors {
		if m.doctors[i].ID == id {
			doctor := m.doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindByIDWithSchedules(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return m.FindByID(db, id)
}

func (m *mockDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.doctors, nil
}

type auditCall struct {
	userID   *uuid.UUID
	action   string
	entityID string
	newValue interface{}
}

type mockAuditService struct {
	err   error
	calls []auditCall
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	m.calls = append(m.calls, auditCall{userID: userID, action: action, entityID: entityID, newValue: newValue})
	return m.err
}

type mockLocker struct {
	err      error
	locked   int
	unlocked int
}

func (m *mockLocker) Lock(ctx context.Context, doctorID uuid.UUID) (func(), error) {
	if m.err != nil {
		return nil, m.err
	}
	m.locked++
	return func() { m.unlocked++ }, nil
}

type mockPublisher struct {
	err    error
	events []entity.SchedulesCreatedEvent
}

func (m *mockPublisher) PublishSchedulesCreated(ctx context.Context, event entity.SchedulesCreatedEvent) error {
	m.events = append(m.events, event)
	return m.err
}
