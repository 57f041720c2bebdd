package dto

import "time"

type ReportRequest struct {
	ID        *int64 `json:"id,omitempty"`
	Type      string `json:"type" validate:"required,oneof=DENTIST PSYCHIATRIST PSYCHOLOGIST SOCIAL_ASSISTANT"`
	Status    string `json:"status" validate:"required,oneof=DRAFT FINAL"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	PatientID int64  `json:"patientId" validate:"required"`
}

type ReportResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PatientID   int64     `json:"patientId"`
	AuthorLogin string    `json:"authorLogin"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
