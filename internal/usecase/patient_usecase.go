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

const patientEntity = "patientManagement"

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, filter string, p pagination.Pageable) ([]dto.PatientResponse, int64, error)
	Get(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo domainRepo.PatientRepository
	docRepo     domainRepo.PatientDocumentRepository
	catalogRepo domainRepo.CatalogRepository
	cityRepo    domainRepo.CityRepository
	reportRepo  domainRepo.ReportRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo domainRepo.PatientRepository,
	docRepo domainRepo.PatientDocumentRepository,
	catalogRepo domainRepo.CatalogRepository,
	cityRepo domainRepo.CityRepository,
	reportRepo domainRepo.ReportRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		docRepo:     docRepo,
		catalogRepo: catalogRepo,
		cityRepo:    cityRepo,
		reportRepo:  reportRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if req.ID != nil {
		return nil, apperr.BadRequest("A new patient cannot already have an id", patientEntity, "idexists")
	}

	patient := &entity.Patient{}
	var resp *dto.PatientResponse
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		if err := u.load(tx, req, patient); err != nil {
			return err
		}
		if patient.ReceptionDate.IsZero() {
			patient.ReceptionDate = time.Now().UTC()
		}
		if err := u.savePatient(tx, patient); err != nil {
			return err
		}
		if err := u.reconcileDocuments(tx, patient, req.Documents); err != nil {
			return err
		}
		var err error
		resp, err = u.reload(tx, patient.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("patient created: id=%d", patient.ID)
	return resp, nil
}

func (u *patientUsecase) Update(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	if req.ID == nil {
		return nil, apperr.NotFound("A patient with this id was not found", patientEntity, "notfound")
	}

	var resp *dto.PatientResponse
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, *req.ID)
		if err != nil {
			return err
		}
		if patient == nil {
			return apperr.NotFound("A patient with this id was not found", patientEntity, "notfound")
		}
		if err := u.load(tx, req, patient); err != nil {
			return err
		}
		if err := u.savePatient(tx, patient); err != nil {
			return err
		}
		if err := u.reconcileDocuments(tx, patient, req.Documents); err != nil {
			return err
		}
		resp, err = u.reload(tx, patient.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (u *patientUsecase) reload(tx *gorm.DB, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

// load overwrites the mutable fields of patient from the request, resolving
// every foreign key with a domain-meaningful failure.
func (u *patientUsecase) load(tx *gorm.DB, req *dto.PatientRequest, patient *entity.Patient) error {
	if req.BirthDate.IsZero() {
		return apperr.BadRequest("Birth date is required", patientEntity, "birthDateRequired")
	}
	if !req.BirthDate.Before(time.Now()) {
		return apperr.BadRequest("Birth date must be in the past", patientEntity, "birthDateInFuture")
	}

	if err := u.resolveCity(tx, req.BirthPlaceID, "birthPlaceNotFound"); err != nil {
		return err
	}
	if req.AddressCityID != nil {
		if err := u.resolveCity(tx, *req.AddressCityID, "addressCityNotFound"); err != nil {
			return err
		}
	}
	if err := u.resolveCatalog(tx, "marital_status", req.MaritalStatusID, "maritalStatusNotFound"); err != nil {
		return err
	}
	if err := u.resolveCatalog(tx, "scholarity", req.ScholarityID, "scholarityNotFound"); err != nil {
		return err
	}
	if err := u.resolveCatalog(tx, "profession", req.ProfessionID, "professionNotFound"); err != nil {
		return err
	}

	patient.Name = req.Name
	patient.BirthDate = req.BirthDate.Time
	patient.Sex = entity.Sex(req.Sex)
	patient.BirthPlaceID = req.BirthPlaceID
	patient.MotherName = req.MotherName
	patient.FatherName = req.FatherName
	patient.MaritalStatusID = req.MaritalStatusID
	patient.ScholarityID = req.ScholarityID
	patient.ProfessionID = req.ProfessionID
	patient.Working = req.Working
	patient.AddressStreet = req.AddressStreet
	patient.AddressNeighborhood = req.AddressNeighborhood
	patient.AddressNumber = req.AddressNumber
	patient.AddressComplement = req.AddressComplement
	patient.AddressZip = req.AddressZip
	patient.AddressCityID = req.AddressCityID
	if req.ReceptionDate != nil {
		patient.ReceptionDate = req.ReceptionDate.UTC()
	}
	return nil
}

func (u *patientUsecase) savePatient(tx *gorm.DB, patient *entity.Patient) error {
	if err := u.patientRepo.Save(tx, patient); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return apperr.Conflict("A patient already exists with this name", patientEntity, "nameExists")
		}
		return err
	}
	return nil
}

func (u *patientUsecase) resolveCity(tx *gorm.DB, id int64, code string) error {
	city, err := u.cityRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if city == nil {
		return apperr.BadRequest("No city found with this id", patientEntity, code)
	}
	return nil
}

func (u *patientUsecase) resolveCatalog(tx *gorm.DB, table string, id int64, code string) error {
	entry, err := u.catalogRepo.FindByID(tx, table, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperr.BadRequest("No reference found with this id", patientEntity, code)
	}
	return nil
}

// reconcileDocuments makes the stored document map equal the incoming one.
// Applying the same map twice is a no-op.
func (u *patientUsecase) reconcileDocuments(tx *gorm.DB, patient *entity.Patient, incoming map[int64]string) error {
	existing, err := u.docRepo.FindByPatientID(tx, patient.ID)
	if err != nil {
		return err
	}

	plan := entity.ReconcileDocuments(patient.ID, existing, incoming)
	for i := range plan.Delete {
		if err := u.docRepo.Delete(tx, &plan.Delete[i]); err != nil {
			return err
		}
	}
	for i := range plan.Upsert {
		if err := u.resolveCatalog(tx, "document_type", plan.Upsert[i].DocumentID, "documentTypeNotFound"); err != nil {
			return err
		}
		if err := u.docRepo.Upsert(tx, &plan.Upsert[i]); err != nil {
			return err
		}
	}
	return nil
}

func (u *patientUsecase) List(ctx context.Context, filter string, p pagination.Pageable) ([]dto.PatientResponse, int64, error) {
	pattern := normalize.LikeParameter(filter)

	var patients []entity.Patient
	var total int64
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		patients, total, err = u.patientRepo.FindAllByFilter(tx, pattern, p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) Get(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	var patient *entity.Patient
	err := inReadTx(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		patient, err = u.patientRepo.FindByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperr.NotFound("A patient with this id was not found", patientEntity, "notfound")
	}
	return converter.PatientToResponse(patient), nil
}

// Delete removes the patient together with every report about them; the
// document map goes with the patient row through the cascade.
func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	err := inTx(ctx, u.db, func(tx *gorm.DB) error {
		if err := u.reportRepo.DeleteAllByPatientID(tx, id); err != nil {
			return err
		}
		_, err := u.patientRepo.Delete(tx, id)
		return err
	})
	if err != nil {
		return err
	}

	u.log.Infof("patient deleted: id=%d", id)
	return nil
}
