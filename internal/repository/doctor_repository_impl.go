package repository

import (
	"errors"

	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, profile *entity.Doctor) error {
	return db.Create(profile).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var profile entity.Doctor
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorRepository) Update(db *gorm.DB, profile *entity.Doctor) error {
	return db.Save(profile).Error
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}
