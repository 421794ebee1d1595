package repository

import (
	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaregiverRepository interface {
	Create(db *gorm.DB, profile *entity.Caregiver) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Caregiver, error)
	Update(db *gorm.DB, profile *entity.Caregiver) error
	Count(db *gorm.DB) (int64, error)
}
