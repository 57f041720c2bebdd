package repository

import (
	"errors"

	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type catalogRepository struct{}

func NewCatalogRepository() domainRepo.CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) Create(db *gorm.DB, table string, entry *entity.CatalogEntry) error {
	return db.Table(table).Create(entry).Error
}

func (r *catalogRepository) FindByID(db *gorm.DB, table string, id int64) (*entity.CatalogEntry, error) {
	var entry entity.CatalogEntry
	err := db.Table(table).Where("id = ?", id).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *catalogRepository) FindByName(db *gorm.DB, table string, name string) (*entity.CatalogEntry, error) {
	var entry entity.CatalogEntry
	err := db.Table(table).Where("name = ?", name).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *catalogRepository) FindAllByName(db *gorm.DB, table string, pattern string, p pagination.Pageable) ([]entity.CatalogEntry, int64, error) {
	var total int64
	query := db.Table(table).Where("name LIKE ?", pattern)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderBy()
	if order == "" {
		order = "name asc"
	}

	var entries []entity.CatalogEntry
	err := query.Order(order).Offset(p.Offset()).Limit(p.Size).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *catalogRepository) Delete(db *gorm.DB, table string, id int64) (int64, error) {
	result := db.Table(table).Where("id = ?", id).Delete(&entity.CatalogEntry{})
	return result.RowsAffected, result.Error
}
