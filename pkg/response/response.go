package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"liber-server/pkg/apperr"

	"github.com/sirupsen/logrus"
)

// Problem is the uniform error envelope. EntityTag and Code are stable
// identifiers clients key their translations on.
type Problem struct {
	Message   string `json:"message"`
	EntityTag string `json:"entityTag"`
	Code      string `json:"code"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Alert renders a service-layer failure. Alerts map to their fixed status;
// anything else is an unexpected error and becomes a plain 500.
func Alert(w http.ResponseWriter, err error) {
	var alert *apperr.Alert
	if errors.As(err, &alert) {
		JSON(w, alert.Kind.Status(), Problem{
			Message:   alert.Message,
			EntityTag: alert.Entity,
			Code:      alert.Code,
		})
		return
	}
	logrus.Errorf("unhandled error: %+v", err)
	JSON(w, http.StatusInternalServerError, Problem{
		Message:   "Internal server error",
		EntityTag: "server",
		Code:      "internal",
	})
}

// BadRequest renders a transport-level contract violation (body the decoder
// could not read, malformed path parameter) before any service is involved.
func BadRequest(w http.ResponseWriter, entity, code, message string) {
	JSON(w, http.StatusBadRequest, Problem{Message: message, EntityTag: entity, Code: code})
}

// ValidationError renders field-level validation failures.
func ValidationError(w http.ResponseWriter, entity string, fields map[string]string) {
	body := struct {
		Problem
		Fields map[string]string `json:"fieldErrors"`
	}{
		Problem: Problem{Message: "Validation failed", EntityTag: entity, Code: "validation"},
		Fields:  fields,
	}
	JSON(w, http.StatusBadRequest, body)
}

// Forbidden renders a role-check failure from the middleware layer.
func Forbidden(w http.ResponseWriter, entity string) {
	JSON(w, http.StatusForbidden, Problem{Message: "Unauthorized", EntityTag: entity, Code: "unauthorized"})
}

// Unauthenticated renders a missing or invalid credential (401).
func Unauthenticated(w http.ResponseWriter, message string) {
	JSON(w, http.StatusUnauthorized, Problem{Message: message, EntityTag: "auth", Code: "unauthenticated"})
}
