package converter

import (
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
)

func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:          report.ID,
		Type:        string(report.Type),
		Status:      string(report.Status),
		Title:       report.Title,
		Content:     report.Content,
		PatientID:   report.PatientID,
		AuthorLogin: report.Author.Login,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}

func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *ReportToResponse(&reports[i]))
	}
	return responses
}
