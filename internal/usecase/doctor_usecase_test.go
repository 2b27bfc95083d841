package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-doctor-schedule/internal/domain/entity"

	"github.com/google/uuid"
)

func TestListDoctors(t *testing.T) {
	repo := &mockDoctorRepo{doctors: []entity.Doctor{
		{ID: uuid.New(), Name: "dr. Rina"},
		{ID: uuid.New(), Name: "dr. Budi"},
	}}
	uc := NewDoctorUsecase(&mockUnitOfWork{scheduleRepo: &mockScheduleRepo{}}, newTestLogger(), repo)

	res, err := uc.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 2 || res.Doctors[1].Name != "dr. Budi" {
		t.Errorf("unexpected list %+v", res)
	}
}

func TestListDoctors_Empty(t *testing.T) {
	uc := NewDoctorUsecase(&mockUnitOfWork{scheduleRepo: &mockScheduleRepo{}}, newTestLogger(), &mockDoctorRepo{})

	if _, err := uc.ListDoctors(context.Background()); !errors.Is(err, ErrNoDoctorsFound) {
		t.Fatalf("expected ErrNoDoctorsFound, got %v", err)
	}
}

func TestGetDoctorDetails(t *testing.T) {
	doctorID := uuid.New()
	date := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	repo := &mockDoctorRepo{doctors: []entity.Doctor{{
		ID:   doctorID,
		Name: "dr. Rina",
		Schedules: []entity.Schedule{
			{ID: 1, DoctorID: doctorID, Day: "monday", TimeStart: "08:00", TimeFinish: "12:00", Quota: 4, Status: true, Date: date},
			{ID: 2, DoctorID: doctorID, Day: "monday", TimeStart: "13:00", TimeFinish: "15:00", Quota: 4, Status: true, Date: date},
		},
	}}}
	uc := NewDoctorUsecase(&mockUnitOfWork{scheduleRepo: &mockScheduleRepo{}}, newTestLogger(), repo)

	res, err := uc.GetDoctorDetails(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CountSchedules != 2 || res.Name != "dr. Rina" {
		t.Errorf("unexpected detail %+v", res)
	}
	if res.Schedules[0].Date != "2024-12-02" {
		t.Errorf("date = %s", res.Schedules[0].Date)
	}
}

func TestGetDoctorDetails_NotFound(t *testing.T) {
	uc := NewDoctorUsecase(&mockUnitOfWork{scheduleRepo: &mockScheduleRepo{}}, newTestLogger(), &mockDoctorRepo{})

	if _, err := uc.GetDoctorDetails(context.Background(), uuid.New()); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestGetDoctorDetails_RepositoryError(t *testing.T) {
	cause := errors.New("db down")
	uc := NewDoctorUsecase(&mockUnitOfWork{scheduleRepo: &mockScheduleRepo{}}, newTestLogger(), &mockDoctorRepo{err: cause})

	if _, err := uc.GetDoctorDetails(context.Background(), uuid.New()); !errors.Is(err, cause) {
		t.Fatalf("expected cause, got %v", err)
	}
}
