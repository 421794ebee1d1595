package dto

import (
	"time"

	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
	Contact  string `json:"contact" validate:"required,min=10,max=20"`
	Address  string `json:"address" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required,min=2"`
	Contact        string `json:"contact" validate:"omitempty,min=10,max=20"`
	Specialization string `json:"specialization" validate:"required"`
	LicenseNumber  string `json:"license_number" validate:"required"`
}

type CreateCaregiverRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	Name              string `json:"name" validate:"required,min=2"`
	Contact           string `json:"contact" validate:"omitempty,min=10,max=20"`
	NIC               string `json:"nic" validate:"required,min=10,max=12"`
	ShiftAvailability string `json:"shift_availability" validate:"omitempty"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
}

type CreatePatientRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender       string `json:"gender" validate:"required,oneof=M F"`
	MedicalNotes string `json:"medical_notes" validate:"omitempty"`
}

// Response DTOs

// RoleProfile is the role-shaped portion of a user response. Only the
// fields relevant to the role are populated.
type RoleProfile struct {
	Name              string `json:"name"`
	Contact           string `json:"contact,omitempty"`
	Address           string `json:"address,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	LicenseNumber     string `json:"license_number,omitempty"`
	NIC               string `json:"nic,omitempty"`
	ShiftAvailability string `json:"shift_availability,omitempty"`
}

type UserResponse struct {
	ID        uuid.UUID    `json:"id"`
	Email     string       `json:"email"`
	Role      entity.Role  `json:"role"`
	IsActive  bool         `json:"is_active"`
	Profile   *RoleProfile `json:"profile,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}
