package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"liber-server/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) Problem {
	t.Helper()
	var p Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestAlertStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"bad request", apperr.BadRequest("m", "e", "c"), http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("m", "e", "c"), http.StatusForbidden},
		{"not found", apperr.NotFound("m", "e", "c"), http.StatusNotFound},
		{"conflict", apperr.Conflict("m", "e", "c"), http.StatusConflict},
		{"wrapped alert", fmt.Errorf("wrap: %w", apperr.NotFound("m", "e", "c")), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Alert(w, tt.err)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestAlertBody(t *testing.T) {
	w := httptest.NewRecorder()
	Alert(w, apperr.Conflict("This name is already being used", "drug", "nameExists"))

	p := decodeProblem(t, w)
	assert.Equal(t, "This name is already being used", p.Message)
	assert.Equal(t, "drug", p.EntityTag)
	assert.Equal(t, "nameExists", p.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestAlertHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	Alert(w, errors.New("pq: connection refused"))

	p := decodeProblem(t, w)
	assert.Equal(t, "Internal server error", p.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationError(w, "patientManagement", map[string]string{"Name": "Name is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Problem
		Fields map[string]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "patientManagement", body.EntityTag)
	assert.Equal(t, "Name is required", body.Fields["Name"])
}

func TestForbidden(t *testing.T) {
	w := httptest.NewRecorder()
	Forbidden(w, "hospitalization")

	assert.Equal(t, http.StatusForbidden, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, "hospitalization", p.EntityTag)
	assert.Equal(t, "unauthorized", p.Code)
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
