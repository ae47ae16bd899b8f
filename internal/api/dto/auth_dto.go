package dto

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	BirthDate  string `json:"birth_date"`
	RoleID     int64  `json:"role_id"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateNameRequest payload for the name update endpoint.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UpdatePasswordRequest payload for the password change endpoint.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// TokenResponse is the success envelope for register and login.
type TokenResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
