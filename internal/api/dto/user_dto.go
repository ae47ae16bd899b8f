package dto

import (
	"time"

	"github.com/spec-kit/thrift-store-api/internal/domain"
)

// UserResponse is the public projection of a user. The password hash is
// never serialized.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PersonaID int64     `json:"persona_id"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserWithRoleResponse projects a user with its role name.
type UserWithRoleResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserWithPersonaResponse projects a user with persona and role names.
type UserWithPersonaResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// PersonaResponse projects a persona record.
type PersonaResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	BirthDate  string `json:"birth_date"`
}

// FromUser maps a domain user.
func FromUser(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		PersonaID: u.PersonaID,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromUsers maps a slice of domain users.
func FromUsers(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// FromPersona maps a domain persona.
func FromPersona(p domain.Persona) PersonaResponse {
	return PersonaResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		NationalID: p.NationalID,
		Address:    p.Address,
		BirthDate:  p.BirthDate.Format("2006-01-02"),
	}
}

// FromPersonas maps a slice of domain personas.
func FromPersonas(personas []domain.Persona) []PersonaResponse {
	out := make([]PersonaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, FromPersona(p))
	}
	return out
}
