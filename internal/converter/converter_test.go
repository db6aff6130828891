package converter

import (
	"testing"
	"time"

	"clinic-manager/internal/domain/entity"
)

func TestPatientToSummary(t *testing.T) {
	patient := &entity.Patient{
		ID:        3,
		LastName:  "Sow",
		FirstName: "Awa",
		BirthDate: time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
		Sex:       entity.SexFemale,
		Phone:     "771234567",
	}

	summary := PatientToSummary(patient)
	if summary.ID != 3 {
		t.Errorf("ID = %d, want 3", summary.ID)
	}
	if summary.BirthDate != "1990-05-14" {
		t.Errorf("BirthDate = %q, want 1990-05-14", summary.BirthDate)
	}
	if summary.Sex != "F" {
		t.Errorf("Sex = %q, want F", summary.Sex)
	}
}

func TestPatientToDetailNil(t *testing.T) {
	if PatientToDetail(nil) != nil {
		t.Error("PatientToDetail(nil) should return nil")
	}
}

func TestAppointmentToViewJoinsNames(t *testing.T) {
	appointment := &entity.Appointment{
		ID:             5,
		PatientID:      3,
		PractitionerID: 1,
		Date:           time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Time:           "14:30:00",
		Status:         entity.StatusScheduled,
		Patient:        entity.Patient{ID: 3, LastName: "Sow", FirstName: "Awa"},
		Practitioner:   entity.User{ID: 1, LastName: "Diop", FirstName: "Amadou"},
	}

	view := AppointmentToView(appointment)
	if view.Date != "2025-12-25" {
		t.Errorf("Date = %q, want 2025-12-25", view.Date)
	}
	if view.Time != "14:30" {
		t.Errorf("Time = %q, want HH:MM without seconds", view.Time)
	}
	if view.PatientName != "Sow Awa" {
		t.Errorf("PatientName = %q, want Sow Awa", view.PatientName)
	}
	if view.PractitionerName != "Diop Amadou" {
		t.Errorf("PractitionerName = %q, want Diop Amadou", view.PractitionerName)
	}
}

func TestAppointmentToViewWithoutPreloads(t *testing.T) {
	appointment := &entity.Appointment{
		ID:     5,
		Date:   time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Time:   "09:00",
		Status: entity.StatusScheduled,
	}

	view := AppointmentToView(appointment)
	if view.PatientName != "" || view.PractitionerName != "" {
		t.Error("names should stay empty when the relations were not loaded")
	}
	if view.Time != "09:00" {
		t.Errorf("Time = %q, want 09:00 unchanged", view.Time)
	}
}

func TestUsersToPractitionerSummaries(t *testing.T) {
	users := []entity.User{
		{ID: 1, LastName: "Diop", FirstName: "Amadou", Specialty: "Cardiology", Phone: "771234567"},
		{ID: 4, LastName: "Fall", FirstName: "Moussa", Specialty: "Pediatrics"},
	}

	summaries := UsersToPractitionerSummaries(users)
	if len(summaries) != 2 {
		t.Fatalf("len = %d, want 2", len(summaries))
	}
	if summaries[0].Specialty != "Cardiology" {
		t.Errorf("Specialty = %q, want Cardiology", summaries[0].Specialty)
	}
	if summaries[1].ID != 4 {
		t.Errorf("ID = %d, want 4", summaries[1].ID)
	}
}
