package handler

import (
	"errors"
	"net/http"

	"go-doctor-schedule/internal/usecase"
	"go-doctor-schedule/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoDoctorsFound) {
			response.NotFound(w, "No doctors found.")
			return
		}
		response.InternalServerError(w, "Failed to get doctors", nil)
		return
	}

	response.SuccessWithCount(w, http.StatusOK, "Success", doctors.Total, doctors.Doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctorDetails(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found.")
			return
		}
		response.InternalServerError(w, "Failed to get doctor", nil)
		return
	}

	response.Success(w, http.StatusOK, "Success", doctor)
}
