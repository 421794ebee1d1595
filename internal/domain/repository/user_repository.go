package repository

import (
	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
