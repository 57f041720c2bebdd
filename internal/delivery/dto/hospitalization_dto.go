package dto

// HospitalizationRequest identifies a hospitalization by its composite key;
// end date and release reason only matter on finish.
type HospitalizationRequest struct {
	PatientID       int64  `json:"patientId" validate:"required"`
	StartDate       Date   `json:"startDate"`
	EndDate         *Date  `json:"endDate,omitempty"`
	ReleaseReasonID *int64 `json:"releaseReasonId,omitempty"`
}

type HospitalizationResponse struct {
	PatientID       int64  `json:"patientId"`
	PatientName     string `json:"patientName,omitempty"`
	StartDate       Date   `json:"startDate"`
	EndDate         *Date  `json:"endDate,omitempty"`
	ReleaseReasonID *int64 `json:"releaseReasonId,omitempty"`
}

type HospitalizedResponse struct {
	Hospitalized bool `json:"hospitalized"`
}
