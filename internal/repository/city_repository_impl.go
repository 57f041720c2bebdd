package repository

import (
	"errors"

	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type cityRepository struct{}

func NewCityRepository() domainRepo.CityRepository {
	return &cityRepository{}
}

func (r *cityRepository) FindByID(db *gorm.DB, id int64) (*entity.City, error) {
	var city entity.City
	err := db.Preload("State.Country").Where("id = ?", id).Take(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindAllByName(db *gorm.DB, pattern string, p pagination.Pageable) ([]entity.City, int64, error) {
	var total int64
	query := db.Model(&entity.City{}).Where("LOWER(name) LIKE ?", pattern)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderBy()
	if order == "" {
		order = "name asc"
	}

	var cities []entity.City
	err := query.Preload("State.Country").Order(order).Offset(p.Offset()).Limit(p.Size).Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}
