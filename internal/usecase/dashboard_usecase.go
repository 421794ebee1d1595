package usecase

import (
	"context"

	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	familyRepo    repository.FamilyMemberRepository
	doctorRepo    repository.DoctorRepository
	caregiverRepo repository.CaregiverRepository
	patientRepo   repository.PatientRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	familyRepo repository.FamilyMemberRepository,
	doctorRepo repository.DoctorRepository,
	caregiverRepo repository.CaregiverRepository,
	patientRepo repository.PatientRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:            db,
		log:           log,
		familyRepo:    familyRepo,
		doctorRepo:    doctorRepo,
		caregiverRepo: caregiverRepo,
		patientRepo:   patientRepo,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)

	families, err := u.familyRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count family members: %+v", err)
		return nil, err
	}

	doctors, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	caregivers, err := u.caregiverRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count caregivers: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		FamilyMembers: families,
		Doctors:       doctors,
		Caregivers:    caregivers,
		Patients:      patients,
	}, nil
}
