package handler

import (
	"net/http"

	"liber-server/internal/usecase"
	"liber-server/pkg/pagination"
	"liber-server/pkg/response"
)

type CityHandler struct {
	cityUsecase usecase.CityUsecase
}

func NewCityHandler(cityUsecase usecase.CityUsecase) *CityHandler {
	return &CityHandler{cityUsecase: cityUsecase}
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	p := pagination.Parse(r)
	cities, total, err := h.cityUsecase.List(r.Context(), r.URL.Query().Get("filter"), p)
	if err != nil {
		response.Alert(w, err)
		return
	}
	pagination.WriteHeaders(w, r, total, p)
	response.JSON(w, http.StatusOK, cities)
}

func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "city")
	if !ok {
		return
	}
	city, err := h.cityUsecase.Get(r.Context(), id)
	if err != nil {
		response.Alert(w, err)
		return
	}
	response.JSON(w, http.StatusOK, city)
}
