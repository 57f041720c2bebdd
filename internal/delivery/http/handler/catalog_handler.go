package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
	"liber-server/internal/usecase"
	"liber-server/pkg/pagination"
	"liber-server/pkg/response"
	"liber-server/pkg/validator"

	"github.com/gorilla/mux"
)

// CatalogHandler serves one reference catalogue; the router creates one
// instance per CatalogDef.
type CatalogHandler struct {
	def            entity.CatalogDef
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(def entity.CatalogDef, catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{def: def, catalogUsecase: catalogUsecase, validator: validator}
}

// Def exposes the catalogue descriptor so the router can derive paths.
func (h *CatalogHandler) Def() entity.CatalogDef {
	return h.def
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, h.def.Entity, "invalidBody", "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.def.Entity, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.catalogUsecase.Create(r.Context(), h.def, &req)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, entry)
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	p := pagination.Parse(r)
	entries, total, err := h.catalogUsecase.List(r.Context(), h.def, r.URL.Query().Get("filter"), p)
	if err != nil {
		response.Alert(w, err)
		return
	}
	pagination.WriteHeaders(w, r, total, p)
	response.JSON(w, http.StatusOK, entries)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.def.Entity)
	if !ok {
		return
	}
	entry, err := h.catalogUsecase.Get(r.Context(), h.def, id)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.def.Entity)
	if !ok {
		return
	}
	if err := h.catalogUsecase.Delete(r.Context(), h.def, id); err != nil {
		response.Alert(w, err)
		return
	}
	response.NoContent(w)
}

// pathID reads the {id} path variable shared by every fetch/delete route.
func pathID(w http.ResponseWriter, r *http.Request, entityTag string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, entityTag, "invalidId", "Invalid id")
		return 0, false
	}
	return id, true
}
