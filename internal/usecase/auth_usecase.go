package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"health-records-backend/config"
	"health-records-backend/internal/converter"
	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/domain/entity"
	"health-records-backend/internal/domain/repository"
	"health-records-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
	ErrNICAlreadyExists     = errors.New("NIC already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountDisabled      = errors.New("account has been deactivated")
	ErrForbidden            = errors.New("role not permitted for this operation")
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("role profile not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest, requester *jwt.Claims) (*dto.UserResponse, error)
	CreateCaregiver(ctx context.Context, req *dto.CreateCaregiverRequest, requester *jwt.Claims) (*dto.UserResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest, requester *jwt.Claims) (*dto.UserResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	DeactivateSelf(ctx context.Context, userID uuid.UUID) error
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
}

type authUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	authCfg       config.AuthConfig
	userRepo      repository.UserRepository
	familyRepo    repository.FamilyMemberRepository
	doctorRepo    repository.DoctorRepository
	caregiverRepo repository.CaregiverRepository
	patientRepo   repository.PatientRepository
	resolver      *ProfileResolver
	jwtService    *jwt.JWTService
	tokenStore    repository.TokenStore
	auditService  AuditLogger
}

// AuditLogger is the slice of the audit service the auth flow needs.
type AuditLogger interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	authCfg config.AuthConfig,
	userRepo repository.UserRepository,
	familyRepo repository.FamilyMemberRepository,
	doctorRepo repository.DoctorRepository,
	caregiverRepo repository.CaregiverRepository,
	patientRepo repository.PatientRepository,
	resolver *ProfileResolver,
	jwtService *jwt.JWTService,
	tokenStore repository.TokenStore,
	auditService AuditLogger,
) AuthUsecase {
	return &authUsecase{
		db:            db,
		log:           log,
		authCfg:       authCfg,
		userRepo:      userRepo,
		familyRepo:    familyRepo,
		doctorRepo:    doctorRepo,
		caregiverRepo: caregiverRepo,
		patientRepo:   patientRepo,
		resolver:      resolver,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		auditService:  auditService,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.authCfg.BcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     entity.RoleFamily,
	}

	// No pre-check on the email: a concurrent signup race is resolved by
	// the unique constraint and surfaced as a duplicate.
	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.FamilyMember{
		UserID:        user.ID,
		FullName:      req.Name,
		ContactNumber: req.Contact,
		Address:       req.Address,
	}

	if err := u.familyRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create family member profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionFamilySignup, "user", user.ID.String(), user.Email); err != nil {
		// Don't fail the transaction for audit log errors
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issueToken(ctx, user, converter.FamilyMemberToProfile(profile))
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Indistinguishable from a wrong password to prevent
			// account enumeration.
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrAccountDisabled
	}

	profile, err := u.resolver.Resolve(u.db.WithContext(ctx), user)
	if err != nil {
		u.log.Warnf("Failed to resolve role profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		u.log.Warnf("No %s profile found for user %s", user.Role, user.ID)
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return u.issueToken(ctx, user, profile)
}

func (u *authUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest, requester *jwt.Claims) (*dto.UserResponse, error) {
	if requester.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.authCfg.BcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     entity.RoleDoctor,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.Doctor{
		UserID:         user.ID,
		FullName:       req.Name,
		ContactNumber:  req.Contact,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
	}

	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &requester.UserID, entity.AuditActionDoctorCreate, "doctor", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, converter.DoctorToProfile(profile)), nil
}

func (u *authUsecase) CreateCaregiver(ctx context.Context, req *dto.CreateCaregiverRequest, requester *jwt.Claims) (*dto.UserResponse, error) {
	if requester.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.authCfg.BcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     entity.RoleCaregiver,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.Caregiver{
		UserID:            user.ID,
		FullName:          req.Name,
		ContactNumber:     req.Contact,
		NIC:               req.NIC,
		ShiftAvailability: req.ShiftAvailability,
	}

	if err := u.caregiverRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "nic") {
			return nil, ErrNICAlreadyExists
		}
		u.log.Warnf("Failed to create caregiver profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &requester.UserID, entity.AuditActionCaregiverCreate, "caregiver", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, converter.CaregiverToProfile(profile)), nil
}

func (u *authUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest, requester *jwt.Claims) (*dto.UserResponse, error) {
	if requester.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.authCfg.BcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     entity.RoleAdmin,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &requester.UserID, entity.AuditActionAdminCreate, "admin", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, adminProfile(req.Name)), nil
}

func (u *authUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error) {
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

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FamilyMemberID: profile.UserID,
		FullName:       req.Name,
		DateOfBirth:    dob,
		Gender:         req.Gender,
		MedicalNotes:   req.MedicalNotes,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &requester.UserID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), patient.FullName); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *authUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}

	profile, err := u.resolver.Resolve(u.db.WithContext(ctx), user)
	if err != nil {
		u.log.Warnf("Failed to resolve role profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		u.log.Warnf("No %s profile found for user %s", user.Role, user.ID)
	}

	return converter.UserToResponse(user, profile), nil
}

func (u *authUsecase) DeactivateSelf(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}

	// The identity's flag is the only activation state; role profiles are
	// untouched. Setting it again is a no-op, so the operation is
	// idempotent in effect.
	inactive := false
	user.IsActive = &inactive

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionUserDeactivate, "user", userID.String(), true, false); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// A live bearer token dies with the account.
	if err := u.tokenStore.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens for deactivated user: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.tokenStore.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, "user", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) issueToken(ctx context.Context, user *entity.User, profile *dto.RoleProfile) (*dto.AuthResponse, error) {
	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Save(ctx, user.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store token: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
		User:      *converter.UserToResponse(user, profile),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
