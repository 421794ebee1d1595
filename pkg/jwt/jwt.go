package jwt

import (
	"errors"
	"time"

	"health-records-backend/config"
	"health-records-backend/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded bearer token payload. It is the only trusted
// identity source once attached to a request context.
type Claims struct {
	UserID  uuid.UUID   `json:"user_id"`
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
	TokenID string      `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateToken issues a signed token for the given identity and returns
// the token string together with its registry ID.
func (s *JWTService) GenerateToken(userID uuid.UUID, email string, role entity.Role) (string, string, error) {
	tokenID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

// ValidateToken verifies signature and expiry. Any failure is a single
// invalid-token condition, never one of the authorization errors.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetExpiry() time.Duration {
	return s.config.Expiry
}
