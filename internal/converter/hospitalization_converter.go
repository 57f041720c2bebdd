package converter

import (
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
)

func HospitalizationToResponse(h *entity.Hospitalization) *dto.HospitalizationResponse {
	if h == nil {
		return nil
	}

	resp := &dto.HospitalizationResponse{
		PatientID:       h.PatientID,
		PatientName:     h.Patient.Name,
		StartDate:       dto.NewDate(h.StartDate),
		ReleaseReasonID: h.ReleaseReasonID,
	}
	if h.EndDate != nil {
		end := dto.NewDate(*h.EndDate)
		resp.EndDate = &end
	}
	return resp
}

func HospitalizationsToResponses(rows []entity.Hospitalization) []dto.HospitalizationResponse {
	responses := make([]dto.HospitalizationResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *HospitalizationToResponse(&rows[i]))
	}
	return responses
}
