// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a profile belongs to.
type Role string

const (
	// RolePatient is the person being cared for. Patients submit locations and own their data.
	RolePatient Role = "PATIENT"
	// RoleCaretaker is a person who monitors one or more patients through accepted connections.
	RoleCaretaker Role = "CARETAKER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleCaretaker:
		return true
	default:
		return false
	}
}
