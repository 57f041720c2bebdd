package dto

import "time"

// PatientRequest is shared by create and update; on create the ID must be
// absent. Documents maps document-type ids to their values.
type PatientRequest struct {
	ID              *int64     `json:"id,omitempty"`
	Name            string     `json:"name" validate:"required,max=100"`
	ReceptionDate   *time.Time `json:"receptionDate,omitempty"`
	BirthDate       Date       `json:"birthDate"`
	Sex             string     `json:"sex" validate:"required,oneof=MALE FEMALE OTHER"`
	BirthPlaceID    int64      `json:"birthPlaceId" validate:"required"`
	MotherName      string     `json:"motherName" validate:"required,max=100"`
	FatherName      string     `json:"fatherName" validate:"max=100"`
	MaritalStatusID int64      `json:"maritalStatusId" validate:"required"`
	ScholarityID    int64      `json:"scholarityId" validate:"required"`
	ProfessionID    int64      `json:"professionId" validate:"required"`
	Working         bool       `json:"working"`

	AddressStreet       string `json:"addressStreet" validate:"max=100"`
	AddressNeighborhood string `json:"addressNeighborhood" validate:"max=80"`
	AddressNumber       string `json:"addressNumber" validate:"max=6"`
	AddressComplement   string `json:"addressComplement" validate:"max=30"`
	AddressZip          string `json:"addressZip" validate:"max=15"`
	AddressCityID       *int64 `json:"addressCityId,omitempty"`

	Documents map[int64]string `json:"documents"`
}

type PatientResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ReceptionDate   time.Time `json:"receptionDate"`
	BirthDate       Date      `json:"birthDate"`
	Sex             string    `json:"sex"`
	BirthPlaceID    int64     `json:"birthPlaceId"`
	MotherName      string    `json:"motherName"`
	FatherName      string    `json:"fatherName,omitempty"`
	MaritalStatusID int64     `json:"maritalStatusId"`
	ScholarityID    int64     `json:"scholarityId"`
	ProfessionID    int64     `json:"professionId"`
	Working         bool      `json:"working"`

	AddressStreet       string `json:"addressStreet,omitempty"`
	AddressNeighborhood string `json:"addressNeighborhood,omitempty"`
	AddressNumber       string `json:"addressNumber,omitempty"`
	AddressComplement   string `json:"addressComplement,omitempty"`
	AddressZip          string `json:"addressZip,omitempty"`
	AddressCityID       *int64 `json:"addressCityId,omitempty"`

	Documents map[int64]string `json:"documents"`
}
