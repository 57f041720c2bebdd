package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"liber-server/internal/delivery/dto"
	"liber-server/internal/usecase"
	"liber-server/pkg/response"
	"liber-server/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, validator: validator}
}

// Authenticate exchanges a login and password for a signed bearer token.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "auth", "invalidBody", "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "auth", h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.Authenticate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthenticated(w, "Invalid credentials")
			return
		}
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, token)
}
