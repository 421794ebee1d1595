package repository

import (
	"errors"

	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type caregiverRepository struct{}

func NewCaregiverRepository() domainRepo.CaregiverRepository {
	return &caregiverRepository{}
}

func (r *caregiverRepository) Create(db *gorm.DB, profile *entity.Caregiver) error {
	return db.Create(profile).Error
}

func (r *caregiverRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Caregiver, error) {
	var profile entity.Caregiver
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *caregiverRepository) Update(db *gorm.DB, profile *entity.Caregiver) error {
	return db.Save(profile).Error
}

func (r *caregiverRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Caregiver{}).Count(&count).Error
	return count, err
}
