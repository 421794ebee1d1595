package repository

import (
	"errors"

	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByFamilyMemberID(db *gorm.DB, familyMemberID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("family_member_id = ?", familyMemberID).Order("created_at ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Patient{}).Error
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}
