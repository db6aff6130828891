package converter

import (
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToSummary converts a Patient entity to its listing row.
func PatientToSummary(patient *entity.Patient) dto.PatientSummary {
	return dto.PatientSummary{
		ID:        patient.ID,
		LastName:  patient.LastName,
		FirstName: patient.FirstName,
		BirthDate: patient.BirthDate.Format(dateLayout),
		Sex:       patient.Sex,
		Phone:     patient.Phone,
		Email:     patient.Email,
	}
}

// PatientsToSummaries converts a slice of Patient entities.
func PatientsToSummaries(patients []entity.Patient) []dto.PatientSummary {
	summaries := make([]dto.PatientSummary, len(patients))
	for i := range patients {
		summaries[i] = PatientToSummary(&patients[i])
	}
	return summaries
}

// PatientToDetail converts a Patient entity to the full record view.
func PatientToDetail(patient *entity.Patient) *dto.PatientDetail {
	if patient == nil {
		return nil
	}
	return &dto.PatientDetail{
		ID:           patient.ID,
		LastName:     patient.LastName,
		FirstName:    patient.FirstName,
		BirthDate:    patient.BirthDate.Format(dateLayout),
		Sex:          patient.Sex,
		Address:      patient.Address,
		Phone:        patient.Phone,
		Email:        patient.Email,
		NationalID:   patient.NationalID,
		RegisteredAt: patient.RegisteredAt,
	}
}
