package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctor-schedule/internal/delivery/dto"
	"go-doctor-schedule/internal/scheduling"
	"go-doctor-schedule/internal/service"
	"go-doctor-schedule/internal/usecase"
	"go-doctor-schedule/pkg/response"
	"go-doctor-schedule/pkg/validator"

	"github.com/google/uuid"
)

type DoctorScheduleHandler struct {
	scheduleUsecase usecase.DoctorScheduleUsecase
	validator       *validator.CustomValidator
}

func NewDoctorScheduleHandler(scheduleUsecase usecase.DoctorScheduleUsecase, validator *validator.CustomValidator) *DoctorScheduleHandler {
	return &DoctorScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *DoctorScheduleHandler) CreateRecurringSchedules(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		message := ""
		if h.validator.HasMissingFields(err) {
			message = "All fields are required."
		}
		response.ValidationError(w, message, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.scheduleUsecase.CreateRecurringSchedules(r.Context(), &req)
	if err != nil {
		var validationErr *scheduling.ValidationError
		var storageErr *usecase.StorageError
		switch {
		case errors.As(err, &validationErr):
			response.ValidationError(w, validationErr.Error(), map[string]string{validationErr.Field: validationErr.Message})
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found.")
		case errors.Is(err, usecase.ErrInvalidDateRange):
			response.Error(w, http.StatusBadRequest, "Invalid date range.", nil)
		case errors.Is(err, service.ErrScheduleLocked):
			response.Conflict(w, "Schedules for this doctor are being updated, please retry.")
		case errors.As(err, &storageErr):
			response.InternalServerError(w, "Error creating schedules", storageErr.Err.Error())
		default:
			response.InternalServerError(w, "Error creating schedules", nil)
		}
		return
	}

	if len(result.Body) == 0 {
		response.Success(w, http.StatusOK, result.Message, nil)
		return
	}
	response.Success(w, http.StatusCreated, result.Message, result.Body)
}

func (h *DoctorScheduleHandler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	var doctorID *uuid.UUID
	if raw := r.URL.Query().Get("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
			return
		}
		doctorID = &id
	}

	schedules, err := h.scheduleUsecase.ListSchedules(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedules", nil)
		return
	}

	response.SuccessWithCount(w, http.StatusOK, "Success", schedules.Total, schedules.Schedules)
}
