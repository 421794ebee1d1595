package converter

import (
	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/entity"
)

// UserToResponse converts a User entity plus its resolved role profile to
// the display-shaped UserResponse DTO.
func UserToResponse(user *entity.User, profile *dto.RoleProfile) *dto.UserResponse {
	if user == nil {
		return nil
	}

	isActive := true
	if user.IsActive != nil {
		isActive = *user.IsActive
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  isActive,
		Profile:   profile,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func FamilyMemberToProfile(profile *entity.FamilyMember) *dto.RoleProfile {
	if profile == nil {
		return nil
	}
	return &dto.RoleProfile{
		Name:    profile.FullName,
		Contact: profile.ContactNumber,
		Address: profile.Address,
	}
}

func DoctorToProfile(profile *entity.Doctor) *dto.RoleProfile {
	if profile == nil {
		return nil
	}
	return &dto.RoleProfile{
		Name:           profile.FullName,
		Contact:        profile.ContactNumber,
		Specialization: profile.Specialization,
		LicenseNumber:  profile.LicenseNumber,
	}
}

func CaregiverToProfile(profile *entity.Caregiver) *dto.RoleProfile {
	if profile == nil {
		return nil
	}
	return &dto.RoleProfile{
		Name:              profile.FullName,
		Contact:           profile.ContactNumber,
		NIC:               profile.NIC,
		ShiftAvailability: profile.ShiftAvailability,
	}
}
