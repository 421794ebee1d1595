package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdatePatientRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender       string `json:"gender" validate:"omitempty,oneof=M F"`
	MedicalNotes string `json:"medical_notes" validate:"omitempty"`
}

type PatientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DateOfBirth  string    `json:"date_of_birth"`
	Gender       string    `json:"gender"`
	MedicalNotes string    `json:"medical_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
