package entity

import (
	"time"
)

// Sex is the biological sex recorded on reception.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// Patient is the demographic aggregate root. Reference data (city, marital
// status, scholarity, profession) hangs off plain foreign-key columns; the
// document map is owned and cascades with the row.
type Patient struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	ReceptionDate   time.Time `gorm:"not null" json:"reception_date"`
	BirthDate       time.Time `gorm:"type:date;not null" json:"birth_date"`
	Sex             Sex       `gorm:"type:varchar(15);not null" json:"sex"`
	BirthPlaceID    int64     `gorm:"not null" json:"birth_place_id"`
	MotherName      string    `gorm:"type:varchar(100);not null" json:"mother_name"`
	FatherName      string    `gorm:"type:varchar(100)" json:"father_name,omitempty"`
	MaritalStatusID int64     `gorm:"not null" json:"marital_status_id"`
	ScholarityID    int64     `gorm:"not null" json:"scholarity_id"`
	ProfessionID    int64     `gorm:"not null" json:"profession_id"`
	Working         bool      `gorm:"not null" json:"working"`

	AddressStreet       string `gorm:"type:varchar(100)" json:"address_street,omitempty"`
	AddressNeighborhood string `gorm:"type:varchar(80)" json:"address_neighborhood,omitempty"`
	AddressNumber       string `gorm:"type:varchar(6)" json:"address_number,omitempty"`
	AddressComplement   string `gorm:"type:varchar(30)" json:"address_complement,omitempty"`
	AddressZip          string `gorm:"type:varchar(15)" json:"address_zip,omitempty"`
	AddressCityID       *int64 `json:"address_city_id,omitempty"`

	Documents []PatientDocument `gorm:"foreignKey:PatientID" json:"documents,omitempty"`
}

func (Patient) TableName() string {
	return "patient"
}
