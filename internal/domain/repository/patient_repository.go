package repository

import (
	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByFamilyMemberID(db *gorm.DB, familyMemberID uuid.UUID) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uuid.UUID) error
	Count(db *gorm.DB) (int64, error)
}
