package entity

import "time"

// UserRole identifies which command set a logged-in staff member may use.
type UserRole string

const (
	RolePractitioner UserRole = "practitioner"
	RoleSecretary    UserRole = "secretary"
)

// ValidRole reports whether the role is one of the two staff roles.
func ValidRole(role UserRole) bool {
	return role == RolePractitioner || role == RoleSecretary
}

// User represents a staff account (practitioner or secretary).
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;index" json:"role"`
	Specialty    string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PractitionerID" json:"appointments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns "LastName FirstName", the display form used everywhere
// in the console.
func (u *User) FullName() string {
	return u.LastName + " " + u.FirstName
}

// IsPractitioner checks if the account holds the practitioner role.
func (u *User) IsPractitioner() bool {
	return u.Role == RolePractitioner
}
