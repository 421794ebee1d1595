package handler

import (
	"encoding/json"
	"net/http"

	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/delivery/http/middleware"
	"health-records-backend/internal/usecase"
	"health-records-backend/pkg/response"
	"health-records-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.patientUsecase.ListPatients(r.Context(), claims)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only family accounts can list patients")
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Family member profile not found")
		default:
			response.InternalServerError(w, "Failed to list patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), patientID, &req, claims)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Patient does not belong to your family")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Family member profile not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), patientID, claims); err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Patient does not belong to your family")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Family member profile not found")
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
