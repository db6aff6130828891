package entity

import "testing"

func TestValidRole(t *testing.T) {
	if !ValidRole(RolePractitioner) {
		t.Error("practitioner should be a valid role")
	}
	if !ValidRole(RoleSecretary) {
		t.Error("secretary should be a valid role")
	}
	if ValidRole(UserRole("admin")) {
		t.Error("admin should not be a valid role")
	}
	if ValidRole(UserRole("")) {
		t.Error("empty role should not be valid")
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusScheduled, StatusCompleted, StatusCancelled} {
		if !ValidStatus(status) {
			t.Errorf("%s should be a valid status", status)
		}
	}
	if ValidStatus(AppointmentStatus("pending")) {
		t.Error("pending should not be a valid status")
	}
}

func TestUserFullName(t *testing.T) {
	user := &User{LastName: "Diop", FirstName: "Amadou"}
	if got := user.FullName(); got != "Diop Amadou" {
		t.Errorf("FullName() = %q, want %q", got, "Diop Amadou")
	}
}

func TestUserIsPractitioner(t *testing.T) {
	practitioner := &User{Role: RolePractitioner}
	if !practitioner.IsPractitioner() {
		t.Error("practitioner role should report IsPractitioner")
	}
	secretary := &User{Role: RoleSecretary}
	if secretary.IsPractitioner() {
		t.Error("secretary role should not report IsPractitioner")
	}
}

func TestPatientFullName(t *testing.T) {
	patient := &Patient{LastName: "Sow", FirstName: "Awa"}
	if got := patient.FullName(); got != "Sow Awa" {
		t.Errorf("FullName() = %q, want %q", got, "Sow Awa")
	}
}

func TestAppointmentStatusHelpers(t *testing.T) {
	appointment := &Appointment{Status: StatusScheduled}
	if appointment.IsCancelled() || appointment.IsCompleted() {
		t.Error("scheduled appointment should be neither cancelled nor completed")
	}

	appointment.Status = StatusCancelled
	if !appointment.IsCancelled() {
		t.Error("cancelled appointment should report IsCancelled")
	}

	appointment.Status = StatusCompleted
	if !appointment.IsCompleted() {
		t.Error("completed appointment should report IsCompleted")
	}
}

func TestJSONValue(t *testing.T) {
	var empty JSON
	value, err := empty.Value()
	if err != nil {
		t.Fatalf("Value() on empty JSON returned error: %v", err)
	}
	if value != nil {
		t.Errorf("Value() on empty JSON = %v, want nil", value)
	}

	metadata := JSON{"entity": "patient", "entity_id": 7}
	value, err = metadata.Value()
	if err != nil {
		t.Fatalf("Value() returned error: %v", err)
	}
	if _, ok := value.([]byte); !ok {
		t.Errorf("Value() = %T, want []byte", value)
	}
}

func TestJSONScan(t *testing.T) {
	var metadata JSON
	if err := metadata.Scan([]byte(`{"entity":"appointment","status":"cancelled"}`)); err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if metadata["entity"] != "appointment" {
		t.Errorf("metadata[entity] = %v, want appointment", metadata["entity"])
	}
	if metadata["status"] != "cancelled" {
		t.Errorf("metadata[status] = %v, want cancelled", metadata["status"])
	}

	if err := metadata.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if metadata != nil {
		t.Errorf("Scan(nil) should reset the map, got %v", metadata)
	}

	if err := metadata.Scan(42); err == nil {
		t.Error("Scan(int) should return an error")
	}
}

func TestJSONScanString(t *testing.T) {
	var metadata JSON
	if err := metadata.Scan(`{"when":"2025-12-25"}`); err != nil {
		t.Fatalf("Scan(string) returned error: %v", err)
	}
	if metadata["when"] != "2025-12-25" {
		t.Errorf("metadata[when] = %v, want 2025-12-25", metadata["when"])
	}
}
