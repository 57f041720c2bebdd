package repository

import (
	"errors"
	"time"

	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type hospitalizationRepository struct{}

func NewHospitalizationRepository() domainRepo.HospitalizationRepository {
	return &hospitalizationRepository{}
}

func (r *hospitalizationRepository) Create(db *gorm.DB, h *entity.Hospitalization) error {
	return db.Omit("Patient").Create(h).Error
}

func (r *hospitalizationRepository) Save(db *gorm.DB, h *entity.Hospitalization) error {
	return db.Omit("Patient").Save(h).Error
}

func (r *hospitalizationRepository) FindByID(db *gorm.DB, patientID int64, startDate time.Time) (*entity.Hospitalization, error) {
	var h entity.Hospitalization
	err := db.Where("patient_id = ? AND start_date = ?", patientID, startDate).Take(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *hospitalizationRepository) FindCurrentByPatientID(db *gorm.DB, patientID int64) (*entity.Hospitalization, error) {
	var h entity.Hospitalization
	err := db.Where("patient_id = ? AND end_date IS NULL", patientID).Take(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *hospitalizationRepository) FindAllByPatientID(db *gorm.DB, patientID int64, p pagination.Pageable) ([]entity.Hospitalization, int64, error) {
	var total int64
	query := db.Model(&entity.Hospitalization{}).Where("patient_id = ?", patientID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderBy()
	if order == "" {
		order = "start_date desc"
	}

	var rows []entity.Hospitalization
	err := query.Order(order).Offset(p.Offset()).Limit(p.Size).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindAllByFilter matches hospitalizations by normalized patient name and
// optional date bounds. With no end-date bound only open rows are returned;
// this mirrors the historical search contract and is deliberate.
func (r *hospitalizationRepository) FindAllByFilter(db *gorm.DB, patientNamePattern string, startDate, endDate *time.Time, p pagination.Pageable) ([]entity.Hospitalization, int64, error) {
	query := db.Model(&entity.Hospitalization{}).
		Joins("JOIN patient ON patient.id = hospitalization.patient_id").
		Where("LOWER(patient.name) LIKE ?", patientNamePattern)

	if startDate != nil {
		query = query.Where("hospitalization.start_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("hospitalization.end_date <= ?", *endDate)
	} else {
		query = query.Where("hospitalization.end_date IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderBy()
	if order == "" {
		order = "hospitalization.start_date desc"
	}

	var rows []entity.Hospitalization
	err := query.Preload("Patient").Order(order).Offset(p.Offset()).Limit(p.Size).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *hospitalizationRepository) Delete(db *gorm.DB, h *entity.Hospitalization) error {
	return db.Where("patient_id = ? AND start_date = ?", h.PatientID, h.StartDate).
		Delete(&entity.Hospitalization{}).Error
}
