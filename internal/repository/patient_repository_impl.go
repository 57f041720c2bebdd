package repository

import (
	"errors"

	"liber-server/internal/domain/entity"
	domainRepo "liber-server/internal/domain/repository"
	"liber-server/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Save(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit("Documents").Save(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("Documents").Where("id = ?", id).Take(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllByFilter(db *gorm.DB, pattern string, p pagination.Pageable) ([]entity.Patient, int64, error) {
	var total int64
	query := db.Model(&entity.Patient{}).Where("LOWER(name) LIKE ?", pattern)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderBy()
	if order == "" {
		order = "name asc"
	}

	var patients []entity.Patient
	err := query.Preload("Documents").Order(order).Offset(p.Offset()).Limit(p.Size).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

type patientDocumentRepository struct{}

func NewPatientDocumentRepository() domainRepo.PatientDocumentRepository {
	return &patientDocumentRepository{}
}

func (r *patientDocumentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.PatientDocument, error) {
	var docs []entity.PatientDocument
	err := db.Where("patient_id = ?", patientID).Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *patientDocumentRepository) Upsert(db *gorm.DB, doc *entity.PatientDocument) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}, {Name: "document_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(doc).Error
}

func (r *patientDocumentRepository) Delete(db *gorm.DB, doc *entity.PatientDocument) error {
	return db.Where("patient_id = ? AND document_id = ?", doc.PatientID, doc.DocumentID).
		Delete(&entity.PatientDocument{}).Error
}
