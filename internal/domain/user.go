package domain

import "time"

// User is the login principal. It references exactly one Persona and a Role.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	PersonaID    int64
	RoleID       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithRole is a read model joining a user with its role name.
type UserWithRole struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// UserWithPersona is a read model joining a user with its persona and role name.
type UserWithPersona struct {
	ID       int64
	Name     string
	Email    string
	FullName string
	Role     string
}
