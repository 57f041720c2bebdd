package repository

import (
	"time"

	"liber-server/internal/domain/entity"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type HospitalizationRepository interface {
	Create(db *gorm.DB, h *entity.Hospitalization) error
	Save(db *gorm.DB, h *entity.Hospitalization) error
	FindByID(db *gorm.DB, patientID int64, startDate time.Time) (*entity.Hospitalization, error)
	// FindCurrentByPatientID resolves the single open row, if any. The
	// partial unique index guarantees at most one exists.
	FindCurrentByPatientID(db *gorm.DB, patientID int64) (*entity.Hospitalization, error)
	FindAllByPatientID(db *gorm.DB, patientID int64, p pagination.Pageable) ([]entity.Hospitalization, int64, error)
	FindAllByFilter(db *gorm.DB, patientNamePattern string, startDate, endDate *time.Time, p pagination.Pageable) ([]entity.Hospitalization, int64, error)
	Delete(db *gorm.DB, h *entity.Hospitalization) error
}
