package converter

import (
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
)

func CatalogEntryToResponse(entry *entity.CatalogEntry) *dto.CatalogResponse {
	if entry == nil {
		return nil
	}
	return &dto.CatalogResponse{ID: entry.ID, Name: entry.Name}
}

func CatalogEntriesToResponses(entries []entity.CatalogEntry) []dto.CatalogResponse {
	responses := make([]dto.CatalogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *CatalogEntryToResponse(&entries[i]))
	}
	return responses
}

// CityToResponse reuses the catalogue shape with the rendered
// "name, state-abbr - country" display string.
func CityToResponse(city *entity.City) *dto.CatalogResponse {
	if city == nil {
		return nil
	}
	return &dto.CatalogResponse{ID: city.ID, Name: city.DisplayName()}
}

func CitiesToResponses(cities []entity.City) []dto.CatalogResponse {
	responses := make([]dto.CatalogResponse, 0, len(cities))
	for i := range cities {
		responses = append(responses, *CityToResponse(&cities[i]))
	}
	return responses
}
