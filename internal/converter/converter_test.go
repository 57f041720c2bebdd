package converter

import (
	"testing"
	"time"

	"liber-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityToResponseRendersDisplayName(t *testing.T) {
	city := &entity.City{
		ID:   4,
		Name: "Florianópolis",
		State: entity.State{
			Abbreviation: "SC",
			Country:      entity.Country{Name: "Brasil"},
		},
	}

	resp := CityToResponse(city)
	require.NotNil(t, resp)
	assert.Equal(t, int64(4), resp.ID)
	assert.Equal(t, "Florianópolis, SC - Brasil", resp.Name)
}

func TestPatientToResponseBuildsDocumentMap(t *testing.T) {
	patient := &entity.Patient{
		ID:   9,
		Name: "João da Silva",
		Documents: []entity.PatientDocument{
			{PatientID: 9, DocumentID: 1, Value: "123456"},
			{PatientID: 9, DocumentID: 3, Value: "XY-7"},
		},
	}

	resp := PatientToResponse(patient)
	require.NotNil(t, resp)
	assert.Equal(t, map[int64]string{1: "123456", 3: "XY-7"}, resp.Documents)
}

func TestHospitalizationToResponse(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	reason := int64(2)

	h := &entity.Hospitalization{
		PatientID:       9,
		StartDate:       start,
		EndDate:         &end,
		ReleaseReasonID: &reason,
		Patient:         entity.Patient{ID: 9, Name: "João da Silva"},
	}

	resp := HospitalizationToResponse(h)
	require.NotNil(t, resp)
	assert.Equal(t, "João da Silva", resp.PatientName)
	assert.Equal(t, "2024-03-01", resp.StartDate.Format("2006-01-02"))
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2024-03-20", resp.EndDate.Format("2006-01-02"))
}

func TestHospitalizationToResponseOpen(t *testing.T) {
	h := &entity.Hospitalization{
		PatientID: 9,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := HospitalizationToResponse(h)
	require.NotNil(t, resp)
	assert.Nil(t, resp.EndDate)
	assert.Nil(t, resp.ReleaseReasonID)
}

func TestNilConversions(t *testing.T) {
	assert.Nil(t, PatientToResponse(nil))
	assert.Nil(t, HospitalizationToResponse(nil))
	assert.Nil(t, CityToResponse(nil))
	assert.Nil(t, CatalogEntryToResponse(nil))
}
