package usecase

import (
	"health-records-backend/internal/converter"
	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/entity"
	"health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// adminDisplayName is the synthetic profile name for admin identities,
// which have no dedicated profile row.
const adminDisplayName = "Administrator"

type profileFetchFunc func(db *gorm.DB, userID uuid.UUID) (*dto.RoleProfile, error)

// ProfileResolver maps each role of the closed enumeration to its own
// profile lookup, so no call site switches on role.
type ProfileResolver struct {
	fetch map[entity.Role]profileFetchFunc
}

func NewProfileResolver(
	familyRepo repository.FamilyMemberRepository,
	doctorRepo repository.DoctorRepository,
	caregiverRepo repository.CaregiverRepository,
) *ProfileResolver {
	return &ProfileResolver{
		fetch: map[entity.Role]profileFetchFunc{
			entity.RoleFamily: func(db *gorm.DB, userID uuid.UUID) (*dto.RoleProfile, error) {
				profile, err := familyRepo.FindByUserID(db, userID)
				if err != nil {
					return nil, err
				}
				return converter.FamilyMemberToProfile(profile), nil
			},
			entity.RoleDoctor: func(db *gorm.DB, userID uuid.UUID) (*dto.RoleProfile, error) {
				profile, err := doctorRepo.FindByUserID(db, userID)
				if err != nil {
					return nil, err
				}
				return converter.DoctorToProfile(profile), nil
			},
			entity.RoleCaregiver: func(db *gorm.DB, userID uuid.UUID) (*dto.RoleProfile, error) {
				profile, err := caregiverRepo.FindByUserID(db, userID)
				if err != nil {
					return nil, err
				}
				return converter.CaregiverToProfile(profile), nil
			},
			entity.RoleAdmin: func(db *gorm.DB, userID uuid.UUID) (*dto.RoleProfile, error) {
				return adminProfile(adminDisplayName), nil
			},
		},
	}
}

// Resolve returns the role-shaped profile for the user, or nil when no
// profile row exists. A nil result for a non-admin role is a data
// integrity gap: profiles are created atomically with their identity.
func (r *ProfileResolver) Resolve(db *gorm.DB, user *entity.User) (*dto.RoleProfile, error) {
	fetch, ok := r.fetch[user.Role]
	if !ok {
		return nil, nil
	}
	return fetch(db, user.ID)
}

func adminProfile(name string) *dto.RoleProfile {
	if name == "" {
		name = adminDisplayName
	}
	return &dto.RoleProfile{Name: name}
}
