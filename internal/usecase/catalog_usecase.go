package usecase

import (
	"context"

	"liber-server/internal/converter"
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/internal/repository"
	"liber-server/pkg/apperr"
	"liber-server/pkg/normalize"
	"liber-server/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase implements the uniform reference-catalogue contract; the
// CatalogDef argument selects which of the twelve catalogues is addressed.
type CatalogUsecase interface {
	Create(ctx context.Context, def entity.CatalogDef, req *dto.CatalogRequest) (*dto.CatalogResponse, error)
	List(ctx context.Context, def entity.CatalogDef, filter string, p pagination.Pageable) ([]dto.CatalogResponse, int64, error)
	Get(ctx context.Context, def entity.CatalogDef, id int64) (*dto.CatalogResponse, error)
	Delete(ctx context.Context, def entity.CatalogDef, id int64) error
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	catalogRepo domainRepo.CatalogRepository
}

func NewCatalogUsecase(db *gorm.DB, log *logrus.Logger, catalogRepo domainRepo.CatalogRepository) CatalogUsecase {
	return &catalogUsecase{db: db, log: log, catalogRepo: catalogRepo}
}

func (u *catalogUsecase) Create(ctx context.Context, def entity.CatalogDef, req *dto.CatalogRequest) (*dto.CatalogResponse, error) {
	entry := &entity.CatalogEntry{Name: normalize.Name(req.Name)}

	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		found, err := u.catalogRepo.FindByName(tx, def.Table, entry.Name)
		if err != nil {
			return err
		}
		if found != nil {
			return apperr.Conflict("A "+def.Entity+" already exists with this name", def.Entity, "nameExists")
		}
		if err := u.catalogRepo.Create(tx, def.Table, entry); err != nil {
			// Concurrent create may slip past the pre-check; the unique
			// index is authoritative.
			if repository.IsUniqueViolation(err, "") {
				return apperr.Conflict("A "+def.Entity+" already exists with this name", def.Entity, "nameExists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("catalog %s: created %q (id=%d)", def.Entity, entry.Name, entry.ID)
	return converter.CatalogEntryToResponse(entry), nil
}

func (u *catalogUsecase) List(ctx context.Context, def entity.CatalogDef, filter string, p pagination.Pageable) ([]dto.CatalogResponse, int64, error) {
	pattern := normalize.LikeParameter(filter)

	var entries []entity.CatalogEntry
	var total int64
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		entries, total, err = u.catalogRepo.FindAllByName(tx, def.Table, pattern, p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return converter.CatalogEntriesToResponses(entries), total, nil
}

func (u *catalogUsecase) Get(ctx context.Context, def entity.CatalogDef, id int64) (*dto.CatalogResponse, error) {
	var entry *entity.CatalogEntry
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		entry, err = u.catalogRepo.FindByID(tx, def.Table, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperr.NotFound("No "+def.Entity+" found with this id", def.Entity, "notfound")
	}
	return converter.CatalogEntryToResponse(entry), nil
}

// Delete is unconditional: removing an absent id is a no-op. A referential
// integrity failure from the storage layer surfaces as a conflict.
func (u *catalogUsecase) Delete(ctx context.Context, def entity.CatalogDef, id int64) error {
	return inTx(ctx, u.db, func(tx *gorm.DB) error {
		_, err := u.catalogRepo.Delete(tx, def.Table, id)
		if err != nil {
			if repository.IsForeignKeyViolation(err) {
				return apperr.Conflict("This "+def.Entity+" is referenced and cannot be deleted", def.Entity, "referenced")
			}
			return err
		}
		return nil
	})
}
