package repository

import (
	"liber-server/internal/domain/entity"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Save(db *gorm.DB, report *entity.Report) error
	FindByID(db *gorm.DB, id int64) (*entity.Report, error)
	FindAllByPatientID(db *gorm.DB, patientID int64, p pagination.Pageable) ([]entity.Report, int64, error)
	Delete(db *gorm.DB, report *entity.Report) error
	DeleteAllByPatientID(db *gorm.DB, patientID int64) error
}
