package repository

import (
	"liber-server/internal/domain/entity"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Save(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindAllByFilter(db *gorm.DB, pattern string, p pagination.Pageable) ([]entity.Patient, int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}

type PatientDocumentRepository interface {
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.PatientDocument, error)
	Upsert(db *gorm.DB, doc *entity.PatientDocument) error
	Delete(db *gorm.DB, doc *entity.PatientDocument) error
}
