package repository

import (
	"health-records-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyMemberRepository interface {
	Create(db *gorm.DB, profile *entity.FamilyMember) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.FamilyMember, error)
	Update(db *gorm.DB, profile *entity.FamilyMember) error
	Count(db *gorm.DB) (int64, error)
}
