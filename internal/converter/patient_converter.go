package converter

import (
	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	documents := make(map[int64]string, len(patient.Documents))
	for _, doc := range patient.Documents {
		documents[doc.DocumentID] = doc.Value
	}

	return &dto.PatientResponse{
		ID:              patient.ID,
		Name:            patient.Name,
		ReceptionDate:   patient.ReceptionDate,
		BirthDate:       dto.NewDate(patient.BirthDate),
		Sex:             string(patient.Sex),
		BirthPlaceID:    patient.BirthPlaceID,
		MotherName:      patient.MotherName,
		FatherName:      patient.FatherName,
		MaritalStatusID: patient.MaritalStatusID,
		ScholarityID:    patient.ScholarityID,
		ProfessionID:    patient.ProfessionID,
		Working:         patient.Working,

		AddressStreet:       patient.AddressStreet,
		AddressNeighborhood: patient.AddressNeighborhood,
		AddressNumber:       patient.AddressNumber,
		AddressComplement:   patient.AddressComplement,
		AddressZip:          patient.AddressZip,
		AddressCityID:       patient.AddressCityID,

		Documents: documents,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
