package middleware

import (
	"net/http"

	"health-records-backend/internal/domain/entity"
	"health-records-backend/pkg/response"
)

// RequireRole declares the allow-list of roles for a route. Role is read
// from context (set by Authenticate from the token claims). Routes without
// a RequireRole wrapper are authentication-only.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaimsFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireFamily is a convenience middleware for family-only endpoints
func RequireFamily(next http.Handler) http.Handler {
	return RequireRole(entity.RoleFamily)(next)
}
