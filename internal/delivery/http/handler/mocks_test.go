package handler

import (
	"context"
	"errors"

	"health-records-backend/internal/delivery/dto"
	"health-records-backend/internal/usecase"
	"health-records-backend/pkg/jwt"

	"github.com/google/uuid"
)

// Compile-time checks
var (
	_ usecase.AuthUsecase    = (*mockAuthUsecase)(nil)
	_ usecase.PatientUsecase = (*mockPatientUsecase)(nil)
)

type mockAuthUsecase struct {
	SignupFunc          func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	LoginFunc           func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CreateDoctorFunc    func(ctx context.Context, req *dto.CreateDoctorRequest, requester *jwt.Claims) (*dto.UserResponse, error)
	CreateCaregiverFunc func(ctx context.Context, req *dto.CreateCaregiverRequest, requester *jwt.Claims) (*dto.UserResponse, error)
	CreateAdminFunc     func(ctx context.Context, req *dto.CreateAdminRequest, requester *jwt.Claims) (*dto.UserResponse, error)
	CreatePatientFunc   func(ctx context.Context, req *dto.CreatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error)
	GetProfileFunc      func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	DeactivateSelfFunc  func(ctx context.Context, userID uuid.UUID) error
	LogoutFunc          func(ctx context.Context, userID uuid.UUID, tokenID string) error
}

func (m *mockAuthUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, errors.New("SignupFunc not implemented in mock")
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errors.New("LoginFunc not implemented in mock")
}

func (m *mockAuthUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest, requester *jwt.Claims) (*dto.UserResponse, error) {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, req, requester)
	}
	return nil, errors.New("CreateDoctorFunc not implemented in mock")
}

func (m *mockAuthUsecase) CreateCaregiver(ctx context.Context, req *dto.CreateCaregiverRequest, requester *jwt.Claims) (*dto.UserResponse, error) {
	if m.CreateCaregiverFunc != nil {
		return m.CreateCaregiverFunc(ctx, req, requester)
	}
	return nil, errors.New("CreateCaregiverFunc not implemented in mock")
}

func (m *mockAuthUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest, requester *jwt.Claims) (*dto.UserResponse, error) {
	if m.CreateAdminFunc != nil {
		return m.CreateAdminFunc(ctx, req, requester)
	}
	return nil, errors.New("CreateAdminFunc not implemented in mock")
}

func (m *mockAuthUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error) {
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, req, requester)
	}
	return nil, errors.New("CreatePatientFunc not implemented in mock")
}

func (m *mockAuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, errors.New("GetProfileFunc not implemented in mock")
}

func (m *mockAuthUsecase) DeactivateSelf(ctx context.Context, userID uuid.UUID) error {
	if m.DeactivateSelfFunc != nil {
		return m.DeactivateSelfFunc(ctx, userID)
	}
	return errors.New("DeactivateSelfFunc not implemented in mock")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID, tokenID)
	}
	return errors.New("LogoutFunc not implemented in mock")
}

type mockPatientUsecase struct {
	ListPatientsFunc  func(ctx context.Context, requester *jwt.Claims) (*dto.PatientListResponse, error)
	UpdatePatientFunc func(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error)
	DeletePatientFunc func(ctx context.Context, patientID uuid.UUID, requester *jwt.Claims) error
}

func (m *mockPatientUsecase) ListPatients(ctx context.Context, requester *jwt.Claims) (*dto.PatientListResponse, error) {
	if m.ListPatientsFunc != nil {
		return m.ListPatientsFunc(ctx, requester)
	}
	return nil, errors.New("ListPatientsFunc not implemented in mock")
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest, requester *jwt.Claims) (*dto.PatientResponse, error) {
	if m.UpdatePatientFunc != nil {
		return m.UpdatePatientFunc(ctx, patientID, req, requester)
	}
	return nil, errors.New("UpdatePatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, patientID uuid.UUID, requester *jwt.Claims) error {
	if m.DeletePatientFunc != nil {
		return m.DeletePatientFunc(ctx, patientID, requester)
	}
	return errors.New("DeletePatientFunc not implemented in mock")
}
