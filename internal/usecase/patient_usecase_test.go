package usecase

import (
	"context"
	"testing"

	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"
	"health-records-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var _ domainRepo.PatientRepository = (*mockPatientRepository)(nil)

type mockPatientRepository struct {
	CreateFunc               func(db *gorm.DB, patient *entity.Patient) error
	FindByIDFunc             func(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByFamilyMemberIDFunc func(db *gorm.DB, familyMemberID uuid.UUID) ([]entity.Patient, error)
	UpdateFunc               func(db *gorm.DB, patient *entity.Patient) error
	DeleteFunc               func(db *gorm.DB, id uuid.UUID) error
	CountFunc                func(db *gorm.DB) (int64, error)
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, patient)
	}
	return nil
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindByFamilyMemberID(db *gorm.DB, familyMemberID uuid.UUID) ([]entity.Patient, error) {
	if m.FindByFamilyMemberIDFunc != nil {
		return m.FindByFamilyMemberIDFunc(db, familyMemberID)
	}
	return nil, nil
}

func (m *mockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id)
	}
	return nil
}

func (m *mockPatientRepository) Count(db *gorm.DB) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(db)
	}
	return 0, nil
}

func newOwnershipUsecase(familyRepo domainRepo.FamilyMemberRepository, patientRepo domainRepo.PatientRepository) *patientUsecase {
	return &patientUsecase{
		log:         logrus.New(),
		familyRepo:  familyRepo,
		patientRepo: patientRepo,
	}
}

func familyClaims(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{
		UserID: userID,
		Email:  "family@example.com",
		Role:   entity.RoleFamily,
	}
}

func TestOwnedPatient_NonFamilyRole(t *testing.T) {
	u := newOwnershipUsecase(&mockFamilyMemberRepository{}, &mockPatientRepository{})

	claims := &jwt.Claims{UserID: uuid.New(), Role: entity.RoleDoctor}
	patient, err := u.ownedPatient(nil, uuid.New(), claims)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, patient)
}

func TestOwnedPatient_PatientMissing(t *testing.T) {
	u := newOwnershipUsecase(&mockFamilyMemberRepository{}, &mockPatientRepository{})

	patient, err := u.ownedPatient(nil, uuid.New(), familyClaims(uuid.New()))

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Nil(t, patient)
}

func TestOwnedPatient_ProfileMissing(t *testing.T) {
	patientRepo := &mockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, FamilyMemberID: uuid.New()}, nil
		},
	}
	u := newOwnershipUsecase(&mockFamilyMemberRepository{}, patientRepo)

	patient, err := u.ownedPatient(nil, uuid.New(), familyClaims(uuid.New()))

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, patient)
}

func TestOwnedPatient_NotOwner(t *testing.T) {
	requesterID := uuid.New()
	patientRepo := &mockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, FamilyMemberID: uuid.New()}, nil
		},
	}
	familyRepo := &mockFamilyMemberRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
			return &entity.FamilyMember{UserID: id}, nil
		},
	}
	u := newOwnershipUsecase(familyRepo, patientRepo)

	patient, err := u.ownedPatient(nil, uuid.New(), familyClaims(requesterID))

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, patient)
}

func TestOwnedPatient_Owner(t *testing.T) {
	requesterID := uuid.New()
	patientID := uuid.New()
	patientRepo := &mockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, FamilyMemberID: requesterID, FullName: "Kid"}, nil
		},
	}
	familyRepo := &mockFamilyMemberRepository{
		FindByUserIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.FamilyMember, error) {
			return &entity.FamilyMember{UserID: id}, nil
		},
	}
	u := newOwnershipUsecase(familyRepo, patientRepo)

	patient, err := u.ownedPatient(nil, patientID, familyClaims(requesterID))

	assert.NoError(t, err)
	assert.NotNil(t, patient)
	assert.Equal(t, patientID, patient.ID)
	assert.Equal(t, "Kid", patient.FullName)
}

func TestListPatients_NonFamilyRole(t *testing.T) {
	u := newOwnershipUsecase(&mockFamilyMemberRepository{}, &mockPatientRepository{})

	list, err := u.ListPatients(context.Background(),&jwt.Claims{UserID: uuid.New(), Role: entity.RoleAdmin})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, list)
}
