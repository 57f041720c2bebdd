package middleware

import (
	"context"
	"net/http"
	"strings"

	"liber-server/internal/domain/entity"
	"liber-server/pkg/jwt"
	"liber-server/pkg/response"
)

type contextKey string

const principalKey contextKey = "principal"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate validates the bearer token and attaches the resulting
// Principal to the request context. Handlers take it out once and pass it
// explicitly into the service layer.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthenticated(w, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthenticated(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthenticated(w, "Invalid or expired token")
			return
		}

		principal := &entity.Principal{
			Login: claims.Subject,
			Roles: claims.Roles(),
		}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the authenticated caller from the request context.
func GetPrincipal(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*entity.Principal)
	return principal, ok
}
