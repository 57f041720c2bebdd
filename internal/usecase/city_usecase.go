package usecase

import (
	"context"

	"liber-server/internal/converter"
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/apperr"
	"liber-server/pkg/normalize"
	"liber-server/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CityUsecase exposes the read-only geographic catalogue. Responses carry
// the rendered "name, state-abbr - country" display string.
type CityUsecase interface {
	List(ctx context.Context, filter string, p pagination.Pageable) ([]dto.CatalogResponse, int64, error)
	Get(ctx context.Context, id int64) (*dto.CatalogResponse, error)
}

type cityUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	cityRepo domainRepo.CityRepository
}

func NewCityUsecase(db *gorm.DB, log *logrus.Logger, cityRepo domainRepo.CityRepository) CityUsecase {
	return &cityUsecase{db: db, log: log, cityRepo: cityRepo}
}

func (u *cityUsecase) List(ctx context.Context, filter string, p pagination.Pageable) ([]dto.CatalogResponse, int64, error) {
	pattern := normalize.LikeParameter(filter)

	var cities []entity.City
	var total int64
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		cities, total, err = u.cityRepo.FindAllByName(tx, pattern, p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return converter.CitiesToResponses(cities), total, nil
}

func (u *cityUsecase) Get(ctx context.Context, id int64) (*dto.CatalogResponse, error) {
	var city *entity.City
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		city, err = u.cityRepo.FindByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, apperr.NotFound("No city found with this id", "city", "notfound")
	}
	return converter.CityToResponse(city), nil
}
