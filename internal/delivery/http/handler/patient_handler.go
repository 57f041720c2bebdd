package handler

import (
	"encoding/json"
	"net/http"

	"liber-server/internal/delivery/dto"
	"liber-server/internal/usecase"
	"liber-server/pkg/pagination"
	"liber-server/pkg/response"
	"liber-server/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase, validator: validator}
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	p := pagination.Parse(r)
	patients, total, err := h.patientUsecase.List(r.Context(), r.URL.Query().Get("filter"), p)
	if err != nil {
		response.Alert(w, err)
		return
	}
	pagination.WriteHeaders(w, r, total, p)
	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patientManagement")
	if !ok {
		return
	}
	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patientManagement")
	if !ok {
		return
	}
	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		response.Alert(w, err)
		return
	}
	response.NoContent(w)
}

func (h *PatientHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.PatientRequest, bool) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "patientManagement", "invalidBody", "Invalid request body")
		return nil, false
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "patientManagement", h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
