package repository

import (
	"errors"

	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Save(db *gorm.DB, report *entity.Report) error {
	return db.Omit("Author").Save(report).Error
}

func (r *reportRepository) FindByID(db *gorm.DB, id int64) (*entity.Report, error) {
	var report entity.Report
	err := db.Preload("Author").Where("id = ?", id).Take(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindAllByPatientID(db *gorm.DB, patientID int64, p pagination.Pageable) ([]entity.Report, int64, error) {
	var total int64
	query := db.Model(&entity.Report{}).Where("patient_id = ?", patientID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderBy()
	if order == "" {
		order = "created_at desc"
	}

	var reports []entity.Report
	err := query.Preload("Author").Order(order).Offset(p.Offset()).Limit(p.Size).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *reportRepository) Delete(db *gorm.DB, report *entity.Report) error {
	return db.Where("id = ?", report.ID).Delete(&entity.Report{}).Error
}

func (r *reportRepository) DeleteAllByPatientID(db *gorm.DB, patientID int64) error {
	return db.Where("patient_id = ?", patientID).Delete(&entity.Report{}).Error
}
