package middleware

import (
	"net/http"

	"liber-server/internal/domain/entity"
	"liber-server/pkg/response"
)

// RequireRole gates a route on the principal carrying any of the given
// roles. The entity tag keeps the rejection envelope consistent with
// service-level authorization failures.
func RequireRole(entityTag string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				response.Unauthenticated(w, "Authentication required")
				return
			}
			if !principal.HasAnyRole(roles...) {
				response.Forbidden(w, entityTag)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSocialAssistant guards the record-management operations.
func RequireSocialAssistant(entityTag string) func(http.Handler) http.Handler {
	return RequireRole(entityTag, entity.RoleSocialAssistant)
}

// RequireClinical guards read access to clinical data.
func RequireClinical(entityTag string) func(http.Handler) http.Handler {
	return RequireRole(entityTag, entity.ClinicalRoles...)
}
