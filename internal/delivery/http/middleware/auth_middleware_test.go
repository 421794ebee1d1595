package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-records-backend/config"
	"health-records-backend/internal/domain/entity"
	domainRepo "health-records-backend/internal/domain/repository"
	"health-records-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure mockTokenStore implements TokenStore
var _ domainRepo.TokenStore = (*mockTokenStore)(nil)

type mockTokenStore struct {
	SaveFunc      func(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	ExistsFunc    func(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	RevokeFunc    func(ctx context.Context, userID uuid.UUID, tokenID string) error
	RevokeAllFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, tokenID, ttl)
	}
	return nil
}

func (m *mockTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, tokenID)
	}
	return true, nil
}

func (m *mockTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, userID, tokenID)
	}
	return nil
}

func (m *mockTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	return nil
}

func newTestJWTService(expiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: expiry})
}

func okHandler(t *testing.T, wantUserID uuid.UUID, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		claims, ok := GetClaimsFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantUserID, claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour), &mockTokenStore{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, uuid.Nil, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour), &mockTokenStore{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, uuid.Nil, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour), &mockTokenStore{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, uuid.Nil, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	m := NewAuthMiddleware(svc, &mockTokenStore{})

	token, _, err := svc.GenerateToken(uuid.New(), "family@example.com", entity.RoleFamily)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, uuid.Nil, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	store := &mockTokenStore{
		ExistsFunc: func(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
			return false, nil
		},
	}
	m := NewAuthMiddleware(svc, store)

	token, _, err := svc.GenerateToken(uuid.New(), "family@example.com", entity.RoleFamily)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, uuid.Nil, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_StoreError(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	store := &mockTokenStore{
		ExistsFunc: func(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
			return false, errors.New("redis down")
		},
	}
	m := NewAuthMiddleware(svc, store)

	token, _, err := svc.GenerateToken(uuid.New(), "family@example.com", entity.RoleFamily)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, uuid.Nil, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc, &mockTokenStore{})
	userID := uuid.New()

	token, _, err := svc.GenerateToken(userID, "family@example.com", entity.RoleFamily)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	called := false
	m.Authenticate(okHandler(t, userID, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
