package entity

import "time"

// Sex values accepted for a patient record.
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "Other"
)

// Patient represents a registered patient.
type Patient struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName     string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	BirthDate    time.Time `gorm:"type:date;not null" json:"birth_date"`
	Sex          string    `gorm:"type:varchar(10)" json:"sex"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email        string    `gorm:"type:varchar(150)" json:"email,omitempty"`
	NationalID   string    `gorm:"column:national_id;type:varchar(50)" json:"national_id,omitempty"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns "LastName FirstName".
func (p *Patient) FullName() string {
	return p.LastName + " " + p.FirstName
}
