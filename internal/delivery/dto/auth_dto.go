package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the explicit value carried through the console after a
// successful login. There is no ambient current-user state; every role-gated
// call receives the session it acts under.
type Session struct {
	UserID    int64     `json:"user_id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Specialty string    `json:"specialty,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FullName returns "LastName FirstName" for the header line.
func (s *Session) FullName() string {
	return s.LastName + " " + s.FirstName
}
