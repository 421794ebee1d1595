package usecase

import (
	"context"
	"errors"
	"time"

	"health-records-backend/internal/converter"
	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/entity"
	"health-records-backend/internal/domain/repository"
	"health-records-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	ListPatients(ctx context.Context, requester *jwt.Claims) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID uuid.UUID, requester *jwt.Claims) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	familyRepo   repository.FamilyMemberRepository
	patientRepo  repository.PatientRepository
	auditService AuditLogger
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	familyRepo repository.FamilyMemberRepository,
	patientRepo repository.PatientRepository,
	auditService AuditLogger,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		familyRepo:   familyRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, requester *jwt.Claims) (*dto.PatientListResponse, error) {
	if requester.Role != entity.RoleFamily {
		return nil, ErrForbidden
	}

	profile, err := u.familyRepo.FindByUserID(u.db.WithContext(ctx), requester.UserID)
	if err != nil {
		u.log.Warnf("Failed to find family member profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	patients, err := u.patientRepo.FindByFamilyMemberID(u.db.WithContext(ctx), profile.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.ownedPatient(tx, patientID, requester)
	if err != nil {
		return nil, err
	}

	oldValue := converter.PatientToResponse(patient)

	if req.Name != "" {
		patient.FullName = req.Name
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.MedicalNotes != "" {
		patient.MedicalNotes = req.MedicalNotes
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, &requester.UserID, entity.AuditActionPatientUpdate, "patient", patientID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uuid.UUID, requester *jwt.Claims) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.ownedPatient(tx, patientID, requester)
	if err != nil {
		return err
	}

	oldValue := converter.PatientToResponse(patient)

	if err := u.patientRepo.Delete(tx, patientID); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &requester.UserID, entity.AuditActionPatientDelete, "patient", patientID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// ownedPatient loads the patient and enforces that the requester's family
// member profile owns it.
func (u *patientUsecase) ownedPatient(db *gorm.DB, patientID uuid.UUID, requester *jwt.Claims) (*entity.Patient, error) {
	if requester.Role != entity.RoleFamily {
		return nil, ErrForbidden
	}

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	profile, err := u.familyRepo.FindByUserID(db, requester.UserID)
	if err != nil {
		u.log.Warnf("Failed to find family member profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if patient.FamilyMemberID != profile.UserID {
		return nil, ErrForbidden
	}

	return patient, nil
}
