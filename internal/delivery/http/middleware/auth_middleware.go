package middleware

import (
	"context"
	"net/http"
	"strings"

	"health-records-backend/internal/domain/repository"
	"health-records-backend/pkg/jwt"
	"health-records-backend/pkg/response"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore repository.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore repository.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Authenticate validates the bearer token and attaches the decoded claim
// set to the request context. The claims are the only trusted identity
// source for the rest of request handling.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check if token is still registered (not revoked)
		exists, err := m.tokenStore.Exists(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts the decoded claim set from context
func GetClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

// WithClaims returns a context carrying the given claim set. Intended for
// tests that exercise handlers without the full middleware chain.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
