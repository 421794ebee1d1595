package usecase

import (
	"errors"
	"testing"

	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Compile-time checks
var (
	_ domainRepo.FamilyMemberRepository = (*mockFamilyMemberRepository)(nil)
	_ domainRepo.DoctorRepository       = (*mockDoctorRepository)(nil)
	_ domainRepo.CaregiverRepository    = (*mockCaregiverRepository)(nil)
)

type mockFamilyMemberRepository struct {
	CreateFunc       func(db *gorm.DB, profile *entity.FamilyMember) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.FamilyMember, error)
	UpdateFunc       func(db *gorm.DB, profile *entity.FamilyMember) error
	CountFunc        func(db *gorm.DB) (int64, error)
}

func (m *mockFamilyMemberRepository) Create(db *gorm.DB, profile *entity.FamilyMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return nil
}

func (m *mockFamilyMemberRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.FamilyMember, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, nil
}

func (m *mockFamilyMemberRepository) Update(db *gorm.DB, profile *entity.FamilyMember) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return nil
}

func (m *mockFamilyMemberRepository) Count(db *gorm.DB) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(db)
	}
	return 0, nil
}

type mockDoctorRepository struct {
	CreateFunc       func(db *gorm.DB, profile *entity.Doctor) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	UpdateFunc       func(db *gorm.DB, profile *entity.Doctor) error
	CountFunc        func(db *gorm.DB) (int64, error)
}

func (m *mockDoctorRepository) Create(db *gorm.DB, profile *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return nil
}

func (m *mockDoctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, nil
}

func (m *mockDoctorRepository) Update(db *gorm.DB, profile *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return nil
}

func (m *mockDoctorRepository) Count(db *gorm.DB) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(db)
	}
	return 0, nil
}

type mockCaregiverRepository struct {
	CreateFunc       func(db *gorm.DB, profile *entity.Caregiver) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.Caregiver, error)
	UpdateFunc       func(db *gorm.DB, profile *entity.Caregiver) error
	CountFunc        func(db *gorm.DB) (int64, error)
}

func (m *mockCaregiverRepository) Create(db *gorm.DB, profile *entity.Caregiver) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return nil
}

func (m *mockCaregiverRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Caregiver, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, nil
}

func (m *mockCaregiverRepository) Update(db *gorm.DB, profile *entity.Caregiver) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return nil
}

func (m *mockCaregiverRepository) Count(db *gorm.DB) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(db)
	}
	return 0, nil
}

func TestResolve_FamilyMember(t *testing.T) {
	userID := uuid.New()
	familyRepo := &mockFamilyMemberRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
			assert.Equal(t, userID, id)
			return &entity.FamilyMember{
				UserID:        id,
				FullName:      "A",
				ContactNumber: "0712345678",
				Address:       "12 Lake Rd",
			}, nil
		},
	}
	resolver := NewProfileResolver(familyRepo, &mockDoctorRepository{}, &mockCaregiverRepository{})

	profile, err := resolver.Resolve(nil, &entity.User{ID: userID, Role: entity.RoleFamily})
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "A", profile.Name)
	assert.Equal(t, "0712345678", profile.Contact)
	assert.Equal(t, "12 Lake Rd", profile.Address)
}

func TestResolve_Doctor(t *testing.T) {
	userID := uuid.New()
	doctorRepo := &mockDoctorRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{
				UserID:         id,
				FullName:       "Doc",
				Specialization: "Cardiology",
				LicenseNumber:  "SLMC-1001",
			}, nil
		},
	}
	resolver := NewProfileResolver(&mockFamilyMemberRepository{}, doctorRepo, &mockCaregiverRepository{})

	profile, err := resolver.Resolve(nil, &entity.User{ID: userID, Role: entity.RoleDoctor})
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Cardiology", profile.Specialization)
	assert.Equal(t, "SLMC-1001", profile.LicenseNumber)
}

func TestResolve_Caregiver(t *testing.T) {
	caregiverRepo := &mockCaregiverRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Caregiver, error) {
			return &entity.Caregiver{
				UserID:            id,
				FullName:          "Care",
				NIC:               "901234567V",
				ShiftAvailability: "night",
			}, nil
		},
	}
	resolver := NewProfileResolver(&mockFamilyMemberRepository{}, &mockDoctorRepository{}, caregiverRepo)

	profile, err := resolver.Resolve(nil, &entity.User{ID: uuid.New(), Role: entity.RoleCaregiver})
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "901234567V", profile.NIC)
	assert.Equal(t, "night", profile.ShiftAvailability)
}

func TestResolve_AdminSynthetic(t *testing.T) {
	// Admin has no profile row; the resolver must not touch any repo.
	familyRepo := &mockFamilyMemberRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
			t.Fatal("family repo must not be consulted for admin")
			return nil, nil
		},
	}
	resolver := NewProfileResolver(familyRepo, &mockDoctorRepository{}, &mockCaregiverRepository{})

	profile, err := resolver.Resolve(nil, &entity.User{ID: uuid.New(), Role: entity.RoleAdmin})
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Administrator", profile.Name)
}

func TestResolve_MissingProfileRow(t *testing.T) {
	resolver := NewProfileResolver(&mockFamilyMemberRepository{}, &mockDoctorRepository{}, &mockCaregiverRepository{})

	profile, err := resolver.Resolve(nil, &entity.User{ID: uuid.New(), Role: entity.RoleFamily})
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestResolve_RepoError(t *testing.T) {
	doctorRepo := &mockDoctorRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
			return nil, errors.New("connection reset")
		},
	}
	resolver := NewProfileResolver(&mockFamilyMemberRepository{}, doctorRepo, &mockCaregiverRepository{})

	profile, err := resolver.Resolve(nil, &entity.User{ID: uuid.New(), Role: entity.RoleDoctor})
	assert.Error(t, err)
	assert.Nil(t, profile)
}
