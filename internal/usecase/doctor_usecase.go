package usecase

import (
	"context"
	"errors"

	"go-doctor-schedule/internal/converter"
	"go-doctor-schedule/internal/delivery/dto"
	"go-doctor-schedule/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrNoDoctorsFound = errors.New("no doctors found")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorDetails(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
}

type doctorUsecase struct {
	uow        repository.UnitOfWork
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(uow repository.UnitOfWork, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		uow:        uow,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.uow.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrNoDoctorsFound
	}

	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetDoctorDetails(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByIDWithSchedules(u.uow.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToDetailResponse(doctor), nil
}
