package converter

import (
	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.FullName,
		DateOfBirth:  patient.DateOfBirth.Format("2006-01-02"),
		Gender:       patient.Gender,
		MedicalNotes: patient.MedicalNotes,
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
