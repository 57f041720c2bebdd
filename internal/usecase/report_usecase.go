package usecase

import (
	"context"

	"liber-server/internal/converter"
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/apperr"
	"liber-server/pkg/pagination"
	"liber-server/pkg/sanitize"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const reportEntity = "report"

type ReportUsecase interface {
	Create(ctx context.Context, principal *entity.Principal, req *dto.ReportRequest) (*dto.ReportResponse, error)
	Update(ctx context.Context, principal *entity.Principal, req *dto.ReportRequest) (*dto.ReportResponse, error)
	List(ctx context.Context, principal *entity.Principal, patientID int64, p pagination.Pageable) ([]dto.ReportResponse, int64, error)
	Get(ctx context.Context, principal *entity.Principal, id int64) (*dto.ReportResponse, error)
	Delete(ctx context.Context, principal *entity.Principal, id int64) error
}

type reportUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	reportRepo  domainRepo.ReportRepository
	patientRepo domainRepo.PatientRepository
	userRepo    domainRepo.UserRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo domainRepo.ReportRepository,
	patientRepo domainRepo.PatientRepository,
	userRepo domainRepo.UserRepository,
) ReportUsecase {
	return &reportUsecase{
		db:          db,
		log:         log,
		reportRepo:  reportRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

func (u *reportUsecase) Create(ctx context.Context, principal *entity.Principal, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if req.ID != nil {
		return nil, apperr.BadRequest("It can't create a report that already has an id", reportEntity, "hasId")
	}

	report := &entity.Report{}
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		return u.loadAndSave(tx, principal, report, req)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("report created: id=%d patient=%d author=%s", report.ID, report.PatientID, principal.Login)
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) Update(ctx context.Context, principal *entity.Principal, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if req.ID == nil {
		return nil, apperr.NotFound("No report found with provided ID", reportEntity, "reportNotFound")
	}

	var report *entity.Report
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		report, err = u.reportRepo.FindByID(tx, *req.ID)
		if err != nil {
			return err
		}
		if report == nil {
			return apperr.NotFound("No report found with provided ID", reportEntity, "reportNotFound")
		}
		if report.Author.Login != principal.Login {
			return apperr.Unauthorized("Unauthorized", reportEntity, "unauthorized")
		}
		return u.loadAndSave(tx, principal, report, req)
	})
	if err != nil {
		return nil, err
	}

	return converter.ReportToResponse(report), nil
}

// loadAndSave overwrites the mutable fields from the request. Content is
// stored as the sanitizer's output, never the raw submission; the author is
// always the current principal.
func (u *reportUsecase) loadAndSave(tx *gorm.DB, principal *entity.Principal, report *entity.Report, req *dto.ReportRequest) error {
	author, err := u.userRepo.FindByLogin(tx, principal.Login)
	if err != nil {
		return err
	}
	if author == nil {
		return apperr.BadRequest("User not found", reportEntity, "authorNotFound")
	}
	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return apperr.BadRequest("Patient not found", reportEntity, "patientNotFound")
	}

	report.AuthorID = author.ID
	report.Author = *author
	report.PatientID = patient.ID
	report.Type = entity.ReportType(req.Type)
	report.Status = entity.ReportStatus(req.Status)
	report.Title = req.Title
	report.Content = sanitize.Content(req.Content)
	return u.reportRepo.Save(tx, report)
}

func (u *reportUsecase) List(ctx context.Context, principal *entity.Principal, patientID int64, p pagination.Pageable) ([]dto.ReportResponse, int64, error) {
	if !principal.HasAnyRole(entity.ClinicalRoles...) {
		return nil, 0, apperr.Unauthorized("Unauthorized", reportEntity, "unauthorized")
	}

	var reports []entity.Report
	var total int64
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		reports, total, err = u.reportRepo.FindAllByPatientID(tx, patientID, p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return converter.ReportsToResponses(reports), total, nil
}

func (u *reportUsecase) Get(ctx context.Context, principal *entity.Principal, id int64) (*dto.ReportResponse, error) {
	if !principal.HasAnyRole(entity.ClinicalRoles...) {
		return nil, apperr.Unauthorized("Unauthorized", reportEntity, "unauthorized")
	}

	var report *entity.Report
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		report, err = u.reportRepo.FindByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, apperr.NotFound("Report not found", reportEntity, "reportNotFound")
	}
	return converter.ReportToResponse(report), nil
}

// Delete removes a report. Deletion is a record-management operation gated
// on the social-assistant role; author identity is not consulted here.
func (u *reportUsecase) Delete(ctx context.Context, principal *entity.Principal, id int64) error {
	if !principal.HasRole(entity.RoleSocialAssistant) {
		return apperr.Unauthorized("Unauthorized", reportEntity, "unauthorized")
	}

	return inTx(ctx, u.db, func(tx *gorm.DB) error {
		report, err := u.reportRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if report == nil {
			return apperr.NotFound("No report found with provided ID", reportEntity, "reportNotFound")
		}
		return u.reportRepo.Delete(tx, report)
	})
}
