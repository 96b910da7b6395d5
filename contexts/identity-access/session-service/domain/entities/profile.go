package entities

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func IsValidRole(value Role) bool {
	switch value {
	case RoleStudent, RoleAdmin:
		return true
	default:
		return false
	}
}

// Profile is the directory-side record of a signed-in user. It is created on
// first resolve with the student role; admin is granted out of band.
type Profile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	School    *string   `json:"school,omitempty"`
	Grade     *string   `json:"grade,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
