package entity

import (
	"time"
)

// Hospitalization is keyed by (patient, start date). A row with a null end
// date is the patient's open hospitalization; a partial unique index on
// patient_id where end_date is null guarantees there is at most one.
type Hospitalization struct {
	PatientID       int64      `gorm:"primaryKey;autoIncrement:false" json:"patient_id"`
	StartDate       time.Time  `gorm:"primaryKey;type:date" json:"start_date"`
	EndDate         *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	ReleaseReasonID *int64     `json:"release_reason_id,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Hospitalization) TableName() string {
	return "hospitalization"
}

// IsOpen reports whether the hospitalization has not been finished yet.
func (h *Hospitalization) IsOpen() bool {
	return h.EndDate == nil
}
