package repository

import (
	"liber-server/internal/domain/entity"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

// CatalogRepository serves all twelve reference catalogues; the table name
// selects which one. Names are already normalized by the caller.
type CatalogRepository interface {
	Create(db *gorm.DB, table string, entry *entity.CatalogEntry) error
	FindByID(db *gorm.DB, table string, id int64) (*entity.CatalogEntry, error)
	FindByName(db *gorm.DB, table string, name string) (*entity.CatalogEntry, error)
	FindAllByName(db *gorm.DB, table string, pattern string, p pagination.Pageable) ([]entity.CatalogEntry, int64, error)
	Delete(db *gorm.DB, table string, id int64) (int64, error)
}
