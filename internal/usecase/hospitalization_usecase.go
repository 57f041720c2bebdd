package usecase

import (
	"context"
	"time"

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

const hospitalizationEntity = "hospitalization"

type HospitalizationUsecase interface {
	Open(ctx context.Context, principal *entity.Principal, req *dto.HospitalizationRequest) (*dto.HospitalizationResponse, error)
	Finish(ctx context.Context, principal *entity.Principal, req *dto.HospitalizationRequest) (*dto.HospitalizationResponse, error)
	ListByPatient(ctx context.Context, principal *entity.Principal, patientID int64, p pagination.Pageable) ([]dto.HospitalizationResponse, int64, error)
	ListByFilter(ctx context.Context, principal *entity.Principal, patientName string, startDate, endDate *time.Time, p pagination.Pageable) ([]dto.HospitalizationResponse, int64, error)
	Delete(ctx context.Context, principal *entity.Principal, patientID int64, startDate time.Time) error
	IsHospitalized(ctx context.Context, principal *entity.Principal, patientID int64) (bool, error)
}

type hospitalizationUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	hospRepo          domainRepo.HospitalizationRepository
	patientRepo       domainRepo.PatientRepository
	releaseReasonRepo domainRepo.CatalogRepository
}

func NewHospitalizationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospRepo domainRepo.HospitalizationRepository,
	patientRepo domainRepo.PatientRepository,
	releaseReasonRepo domainRepo.CatalogRepository,
) HospitalizationUsecase {
	return &hospitalizationUsecase{
		db:                db,
		log:               log,
		hospRepo:          hospRepo,
		patientRepo:       patientRepo,
		releaseReasonRepo: releaseReasonRepo,
	}
}

func unauthorized() *apperr.Alert {
	return apperr.Unauthorized("Unauthorized", hospitalizationEntity, "unauthorized")
}

// Open starts a hospitalization. The advisory pre-check yields the proper
// error message; the partial unique index on open rows is what actually
// guarantees at most one under concurrency.
func (u *hospitalizationUsecase) Open(ctx context.Context, principal *entity.Principal, req *dto.HospitalizationRequest) (*dto.HospitalizationResponse, error) {
	if !principal.HasRole(entity.RoleSocialAssistant) {
		return nil, unauthorized()
	}
	if req.StartDate.IsZero() {
		return nil, apperr.BadRequest("You need a start date to open an hospitalization", hospitalizationEntity, "startDateRequired")
	}
	if req.StartDate.After(today()) {
		return nil, apperr.BadRequest("Start date cannot be in the future", hospitalizationEntity, "startDateInFuture")
	}

	h := &entity.Hospitalization{
		PatientID: req.PatientID,
		StartDate: req.StartDate.Time,
	}
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, req.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return apperr.BadRequest("Patient not found", hospitalizationEntity, "patientNotFound")
		}
		current, err := u.hospRepo.FindCurrentByPatientID(tx, req.PatientID)
		if err != nil {
			return err
		}
		if current != nil {
			return apperr.BadRequest("Patient already hospitalized", hospitalizationEntity, "alreadyHospitalized")
		}
		if err := u.hospRepo.Create(tx, h); err != nil {
			if repository.IsUniqueViolation(err, repository.ConstraintOpenHospitalization) {
				return apperr.BadRequest("Patient already hospitalized", hospitalizationEntity, "alreadyHospitalized")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("hospitalization opened: patient=%d start=%s", h.PatientID, h.StartDate.Format("2006-01-02"))
	return converter.HospitalizationToResponse(h), nil
}

// Finish closes the hospitalization identified by (patient, startDate).
// Repeating the call with the same values is idempotent.
func (u *hospitalizationUsecase) Finish(ctx context.Context, principal *entity.Principal, req *dto.HospitalizationRequest) (*dto.HospitalizationResponse, error) {
	if !principal.HasRole(entity.RoleSocialAssistant) {
		return nil, unauthorized()
	}
	if req.EndDate == nil || req.EndDate.IsZero() {
		return nil, apperr.BadRequest("You need a end date to finish an hospitalization", hospitalizationEntity, "endDateRequired")
	}
	if req.ReleaseReasonID == nil {
		return nil, apperr.BadRequest("You need a release reason to finish an hospitalization", hospitalizationEntity, "releaseReasonRequired")
	}
	if req.EndDate.After(today()) {
		return nil, apperr.BadRequest("End date cannot be in the future", hospitalizationEntity, "endDateInFuture")
	}

	var h *entity.Hospitalization
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		reason, err := u.releaseReasonRepo.FindByID(tx, "release_reason", *req.ReleaseReasonID)
		if err != nil {
			return err
		}
		if reason == nil {
			return apperr.BadRequest("No release reason found with this id", hospitalizationEntity, "releaseReasonNotFound")
		}
		h, err = u.findHospitalization(tx, req.PatientID, req.StartDate.Time)
		if err != nil {
			return err
		}
		if req.EndDate.Before(h.StartDate) {
			return apperr.BadRequest("End date cannot precede the start date", hospitalizationEntity, "endBeforeStart")
		}
		end := req.EndDate.Time
		h.EndDate = &end
		h.ReleaseReasonID = req.ReleaseReasonID
		return u.hospRepo.Save(tx, h)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("hospitalization finished: patient=%d start=%s", h.PatientID, h.StartDate.Format("2006-01-02"))
	return converter.HospitalizationToResponse(h), nil
}

func (u *hospitalizationUsecase) ListByPatient(ctx context.Context, principal *entity.Principal, patientID int64, p pagination.Pageable) ([]dto.HospitalizationResponse, int64, error) {
	if !principal.HasAnyRole(entity.ClinicalRoles...) {
		return nil, 0, unauthorized()
	}

	var rows []entity.Hospitalization
	var total int64
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		rows, total, err = u.hospRepo.FindAllByPatientID(tx, patientID, p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return converter.HospitalizationsToResponses(rows), total, nil
}

func (u *hospitalizationUsecase) ListByFilter(ctx context.Context, principal *entity.Principal, patientName string, startDate, endDate *time.Time, p pagination.Pageable) ([]dto.HospitalizationResponse, int64, error) {
	if !principal.HasAnyRole(entity.ClinicalRoles...) {
		return nil, 0, unauthorized()
	}
	pattern := normalize.LikeParameter(patientName)

	var rows []entity.Hospitalization
	var total int64
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		rows, total, err = u.hospRepo.FindAllByFilter(tx, pattern, startDate, endDate, p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return converter.HospitalizationsToResponses(rows), total, nil
}

func (u *hospitalizationUsecase) Delete(ctx context.Context, principal *entity.Principal, patientID int64, startDate time.Time) error {
	if !principal.HasRole(entity.RoleSocialAssistant) {
		return unauthorized()
	}

	return inTx(ctx, u.db, func(tx *gorm.DB) error {
		h, err := u.findHospitalization(tx, patientID, startDate)
		if err != nil {
			return err
		}
		return u.hospRepo.Delete(tx, h)
	})
}

func (u *hospitalizationUsecase) IsHospitalized(ctx context.Context, principal *entity.Principal, patientID int64) (bool, error) {
	if !principal.HasAnyRole(entity.ClinicalRoles...) {
		return false, unauthorized()
	}

	var current *entity.Hospitalization
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		current, err = u.hospRepo.FindCurrentByPatientID(tx, patientID)
		return err
	})
	if err != nil {
		return false, err
	}
	return current != nil, nil
}

func (u *hospitalizationUsecase) findHospitalization(tx *gorm.DB, patientID int64, startDate time.Time) (*entity.Hospitalization, error) {
	h, err := u.hospRepo.FindByID(tx, patientID, startDate)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperr.NotFound("No hospitalization found with provided patient ID and start date", hospitalizationEntity, "hospitalizationNotFound")
	}
	return h, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
