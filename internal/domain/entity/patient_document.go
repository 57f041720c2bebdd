package entity

import "strings"

// PatientDocument is one entry of the patient's document map: the value of a
// single document type for a single patient.
type PatientDocument struct {
	PatientID  int64  `gorm:"primaryKey;autoIncrement:false" json:"patient_id"`
	DocumentID int64  `gorm:"primaryKey;autoIncrement:false" json:"document_id"`
	Value      string `gorm:"type:varchar(20);not null" json:"value"`
}

func (PatientDocument) TableName() string {
	return "patient_document"
}

// DocumentPlan is the outcome of reconciling the stored document map against
// an incoming one.
type DocumentPlan struct {
	Delete []PatientDocument
	Upsert []PatientDocument
}

// ReconcileDocuments diffs the stored rows against the incoming map.
// Rows absent from the map are deleted; entries missing a row are created;
// rows whose value differs (case-insensitively) are rewritten. Applying the
// same map twice yields an empty second plan.
func ReconcileDocuments(patientID int64, existing []PatientDocument, incoming map[int64]string) DocumentPlan {
	var plan DocumentPlan

	current := make(map[int64]PatientDocument, len(existing))
	for _, doc := range existing {
		if _, wanted := incoming[doc.DocumentID]; !wanted {
			plan.Delete = append(plan.Delete, doc)
			continue
		}
		current[doc.DocumentID] = doc
	}

	for documentID, value := range incoming {
		if doc, ok := current[documentID]; ok && strings.EqualFold(doc.Value, value) {
			continue
		}
		plan.Upsert = append(plan.Upsert, PatientDocument{
			PatientID:  patientID,
			DocumentID: documentID,
			Value:      value,
		})
	}

	return plan
}
