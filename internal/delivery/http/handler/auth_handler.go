package handler

import (
	"encoding/json"
	"net/http"

	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/delivery/http/middleware"
	"health-records-backend/internal/usecase"
	"health-records-backend/pkg/response"
	"health-records-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Signup registers a family account and returns a token plus the shaped
// user summary.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auth, err := h.authUsecase.Signup(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		default:
			response.InternalServerError(w, "Failed to sign up")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Account created successfully", auth)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	auth, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case usecase.ErrAccountDisabled:
			response.Unauthorized(w, "Account has been deactivated")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", auth)
}

func (h *AuthHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.CreateDoctor(r.Context(), &req, claims)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only admins can create doctor accounts")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "License number already exists")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor account created successfully", user)
}

func (h *AuthHandler) CreateCaregiver(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.CreateCaregiver(r.Context(), &req, claims)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only admins can create caregiver accounts")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrNICAlreadyExists:
			response.Conflict(w, "NIC already exists")
		default:
			response.InternalServerError(w, "Failed to create caregiver")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Caregiver account created successfully", user)
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.CreateAdmin(r.Context(), &req, claims)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only admins can create admin accounts")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		default:
			response.InternalServerError(w, "Failed to create admin")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admin account created successfully", user)
}

func (h *AuthHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.authUsecase.CreatePatient(r.Context(), &req, claims)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only family accounts can register patients")
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Family member profile not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", user)
}

func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.DeactivateSelf(r.Context(), claims.UserID); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to deactivate account")
		}
		return
	}

	response.Success(w, http.StatusOK, "Account deactivated successfully", nil)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), claims.UserID, claims.TokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
