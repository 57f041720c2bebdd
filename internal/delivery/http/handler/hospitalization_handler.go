package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"liber-server/internal/delivery/dto"
	"liber-server/internal/delivery/http/middleware"
	"liber-server/internal/domain/entity"
	"liber-server/internal/usecase"
	"liber-server/pkg/pagination"
	"liber-server/pkg/response"
	"liber-server/pkg/validator"

	"github.com/gorilla/mux"
)

type HospitalizationHandler struct {
	hospUsecase usecase.HospitalizationUsecase
	validator   *validator.CustomValidator
}

func NewHospitalizationHandler(hospUsecase usecase.HospitalizationUsecase, validator *validator.CustomValidator) *HospitalizationHandler {
	return &HospitalizationHandler{hospUsecase: hospUsecase, validator: validator}
}

func (h *HospitalizationHandler) Open(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	hosp, err := h.hospUsecase.Open(r.Context(), principal, req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, hosp)
}

func (h *HospitalizationHandler) Finish(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	hosp, err := h.hospUsecase.Finish(r.Context(), principal, req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, hosp)
}

// List serves the filtered listing: optional patient name fragment plus an
// optional start/end date window.
func (h *HospitalizationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	startDate, err := dto.ParseQueryDate(q.Get("startDate"))
	if err != nil {
		response.BadRequest(w, "hospitalization", "invalidDate", "Invalid startDate")
		return
	}
	endDate, err := dto.ParseQueryDate(q.Get("endDate"))
	if err != nil {
		response.BadRequest(w, "hospitalization", "invalidDate", "Invalid endDate")
		return
	}

	p := pagination.Parse(r)
	hosps, total, err := h.hospUsecase.ListByFilter(r.Context(), principal, q.Get("patientName"), startDate, endDate, p)
	if err != nil {
		response.Alert(w, err)
		return
	}
	pagination.WriteHeaders(w, r, total, p)
	response.JSON(w, http.StatusOK, hosps)
}

func (h *HospitalizationHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	patientID, ok := pathPatientID(w, r)
	if !ok {
		return
	}

	p := pagination.Parse(r)
	hosps, total, err := h.hospUsecase.ListByPatient(r.Context(), principal, patientID, p)
	if err != nil {
		response.Alert(w, err)
		return
	}
	pagination.WriteHeaders(w, r, total, p)
	response.JSON(w, http.StatusOK, hosps)
}

func (h *HospitalizationHandler) IsHospitalized(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	patientID, ok := pathPatientID(w, r)
	if !ok {
		return
	}

	hospitalized, err := h.hospUsecase.IsHospitalized(r.Context(), principal, patientID)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.HospitalizedResponse{Hospitalized: hospitalized})
}

// Delete removes one hospitalization row. The composite key travels in the
// request body because start dates are not path-safe across clients.
func (h *HospitalizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if err := h.hospUsecase.Delete(r.Context(), principal, req.PatientID, req.StartDate.Time); err != nil {
		response.Alert(w, err)
		return
	}
	response.NoContent(w)
}

func (h *HospitalizationHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.HospitalizationRequest, bool) {
	var req dto.HospitalizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "hospitalization", "invalidBody", "Invalid request body")
		return nil, false
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "hospitalization", h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func pathPatientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["patientId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "hospitalization", "invalidId", "Invalid patient id")
		return 0, false
	}
	return id, true
}

// requirePrincipal pulls the authenticated principal set by the auth
// middleware; its absence means the route was wired without it.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*entity.Principal, bool) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		response.Unauthenticated(w, "Authentication required")
		return nil, false
	}
	return principal, true
}
