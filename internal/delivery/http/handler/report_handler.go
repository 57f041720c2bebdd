package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"liber-server/internal/delivery/dto"
	"liber-server/internal/usecase"
	"liber-server/pkg/pagination"
	"liber-server/pkg/response"
	"liber-server/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, validator: validator}
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	report, err := h.reportUsecase.Create(r.Context(), principal, req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	report, err := h.reportUsecase.Update(r.Context(), principal, req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, report)
}

// List serves the patient's reports; the patient travels as the patientId
// query parameter.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	patientID, err := strconv.ParseInt(r.URL.Query().Get("patientId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "report", "invalidId", "Invalid patient id")
		return
	}

	p := pagination.Parse(r)
	reports, total, err := h.reportUsecase.List(r.Context(), principal, patientID, p)
	if err != nil {
		response.Alert(w, err)
		return
	}
	pagination.WriteHeaders(w, r, total, p)
	response.JSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "report")
	if !ok {
		return
	}

	report, err := h.reportUsecase.Get(r.Context(), principal, id)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "report")
	if !ok {
		return
	}

	if err := h.reportUsecase.Delete(r.Context(), principal, id); err != nil {
		response.Alert(w, err)
		return
	}
	response.NoContent(w)
}

func (h *ReportHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.ReportRequest, bool) {
	var req dto.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "report", "invalidBody", "Invalid request body")
		return nil, false
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "report", h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
