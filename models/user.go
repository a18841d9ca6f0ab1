package models

// Role gates which pages a user can reach. The core subsystems are
// role-agnostic; only route guarding consults it.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGM    Role = "gm"
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// User is a dashboard account.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Department   Department `json:"department,omitempty"`
	Properties   []string   `json:"properties,omitempty"`
	PasswordHash string     `json:"-"`
}
