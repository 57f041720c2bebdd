package repository

import (
	"liber-server/internal/domain/entity"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

// CityRepository is read-only; the geographic hierarchy is seeded by
// migration and never mutated through the API.
type CityRepository interface {
	FindByID(db *gorm.DB, id int64) (*entity.City, error)
	FindAllByName(db *gorm.DB, pattern string, p pagination.Pageable) ([]entity.City, int64, error)
}
