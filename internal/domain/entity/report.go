package entity

import (
	"time"
)

type ReportType string

const (
	ReportTypeDentist         ReportType = "DENTIST"
	ReportTypePsychiatrist    ReportType = "PSYCHIATRIST"
	ReportTypePsychologist    ReportType = "PSYCHOLOGIST"
	ReportTypeSocialAssistant ReportType = "SOCIAL_ASSISTANT"
)

type ReportStatus string

const (
	ReportStatusDraft ReportStatus = "DRAFT"
	ReportStatusFinal ReportStatus = "FINAL"
)

// Report is a practitioner-authored clinical note. Content is always the
// sanitizer's output, never the raw submission.
type Report struct {
	ID        int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      ReportType   `gorm:"type:varchar(20);not null" json:"type"`
	Status    ReportStatus `gorm:"type:varchar(10);not null" json:"status"`
	Title     string       `gorm:"not null" json:"title"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	PatientID int64        `gorm:"not null;index" json:"patient_id"`
	AuthorID  int64        `gorm:"not null" json:"author_id"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Report) TableName() string {
	return "report"
}
