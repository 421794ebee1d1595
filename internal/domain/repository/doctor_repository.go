package repository

import (
	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, profile *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	Update(db *gorm.DB, profile *entity.Doctor) error
	Count(db *gorm.DB) (int64, error)
}
