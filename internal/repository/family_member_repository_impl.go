package repository

import (
	"errors"

	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type familyMemberRepository struct{}

func NewFamilyMemberRepository() domainRepo.FamilyMemberRepository {
	return &familyMemberRepository{}
}

func (r *familyMemberRepository) Create(db *gorm.DB, profile *entity.FamilyMember) error {
	return db.Create(profile).Error
}

func (r *familyMemberRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.FamilyMember, error) {
	var profile entity.FamilyMember
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *familyMemberRepository) Update(db *gorm.DB, profile *entity.FamilyMember) error {
	return db.Save(profile).Error
}

func (r *familyMemberRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.FamilyMember{}).Count(&count).Error
	return count, err
}
