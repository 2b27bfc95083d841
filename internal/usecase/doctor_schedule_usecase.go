package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-doctor-schedule/internal/converter"
	"go-doctor-schedule/internal/delivery/dto"
	"go-doctor-schedule/internal/delivery/http/middleware"
	"go-doctor-schedule/internal/domain/entity"
	"go-doctor-schedule/internal/domain/repository"
	"go-doctor-schedule/internal/scheduling"
	"go-doctor-schedule/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	MsgSchedulesCreated = "Schedules created successfully"
	MsgNoValidSchedules = "No valid schedules to create within the given date range."
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
)

// StorageError wraps a failure of the record store while persisting slots.
// Nothing from the failed batch has been kept.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("error creating schedules: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type DoctorScheduleUsecase interface {
	CreateRecurringSchedules(ctx context.Context, req *dto.CreateRecurringScheduleRequest) (*dto.BulkScheduleResponse, error)
	ListSchedules(ctx context.Context, doctorID *uuid.UUID) (*dto.ScheduleListResponse, error)
}

type doctorScheduleUsecase struct {
	uow          repository.UnitOfWork
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	locker       service.ScheduleLocker
	publisher    service.ScheduleEventPublisher
}

func NewDoctorScheduleUsecase(
	uow repository.UnitOfWork,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	locker service.ScheduleLocker,
	publisher service.ScheduleEventPublisher,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		uow:          uow,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		locker:       locker,
		publisher:    publisher,
	}
}

func (u *doctorScheduleUsecase) CreateRecurringSchedules(ctx context.Context, req *dto.CreateRecurringScheduleRequest) (*dto.BulkScheduleResponse, error) {
	if err := scheduling.Validate(scheduling.Input{
		Day:        req.Day,
		DateRange:  req.DateRange,
		TimeStart:  req.TimeStart,
		TimeFinish: req.TimeFinish,
		Quota:      req.Quota,
		Status:     req.Status,
	}); err != nil {
		return nil, err
	}

	quota, err := scheduling.ParseQuota(req.Quota)
	if err != nil {
		return nil, &scheduling.ValidationError{Field: "quota", Message: err.Error()}
	}
	status, err := scheduling.ParseStatus(req.Status)
	if err != nil {
		return nil, &scheduling.ValidationError{Field: "status", Message: err.Error()}
	}

	doctor, err := u.doctorRepo.FindByID(u.uow.DB(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, &StorageError{Err: err}
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	unlock, err := u.locker.Lock(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	dateRange, err := scheduling.ParseDateRange(req.DateRange)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	existing, err := u.scheduleRepo.FindByDoctorInRange(u.uow.DB(ctx), doctor.ID, dateRange.Start, dateRange.End)
	if err != nil {
		u.log.Warnf("Failed to find existing schedules: %+v", err)
		return nil, &StorageError{Err: err}
	}

	candidates := scheduling.Expand(scheduling.Template{
		DoctorID:   doctor.ID,
		Day:        req.Day,
		TimeStart:  req.TimeStart,
		TimeFinish: req.TimeFinish,
		Quota:      quota,
		Status:     status,
	}, dateRange)

	accepted, skipped := scheduling.ResolveConflicts(candidates, converter.SchedulesToBookedSlots(existing))
	for _, candidate := range skipped {
		u.log.Infof("Skipping schedule on %s from %s to %s due to conflict", candidate.DateKey(), candidate.TimeStart, candidate.TimeFinish)
	}

	if len(accepted) == 0 {
		return &dto.BulkScheduleResponse{Message: MsgNoValidSchedules}, nil
	}

	schedules := make([]entity.Schedule, len(accepted))
	for i, candidate := range accepted {
		schedules[i] = converter.CandidateToEntity(candidate)
	}

	var actorID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		actorID = &userID
	}

	err = u.uow.Transaction(ctx, func(tx *gorm.DB) error {
		if err := u.scheduleRepo.BulkCreate(tx, schedules); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionScheduleBulkCreate, "schedule", doctor.ID.String(), map[string]interface{}{
			"count":       len(schedules),
			"day":         req.Day,
			"date_range":  dateRange.String(),
			"time_start":  req.TimeStart,
			"time_finish": req.TimeFinish,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to create schedules for doctor %s: %+v", doctor.ID, err)
		return nil, &StorageError{Err: err}
	}

	event := entity.SchedulesCreatedEvent{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Day:        req.Day,
		DateRange:  dateRange.String(),
		Slots:      converter.SchedulesToEventSlots(schedules),
		CreatedBy:  actorID,
		OccurredAt: time.Now(),
	}
	if err := u.publisher.PublishSchedulesCreated(ctx, event); err != nil {
		u.log.Warnf("Failed to publish %s event for doctor %s: %+v", entity.EventSchedulesCreated, doctor.ID, err)
	}

	return &dto.BulkScheduleResponse{
		Message: MsgSchedulesCreated,
		Body:    converter.SchedulesToResponses(schedules, doctor.Name),
	}, nil
}

func (u *doctorScheduleUsecase) ListSchedules(ctx context.Context, doctorID *uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.uow.DB(ctx), &entity.ScheduleFilter{DoctorID: doctorID})
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	responses := converter.SchedulesToResponses(schedules, "")
	return &dto.ScheduleListResponse{
		Schedules: responses,
		Total:     len(responses),
	}, nil
}
