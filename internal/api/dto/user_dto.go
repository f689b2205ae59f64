package dto

import "github.com/spec-kit/account-service/internal/domain"

// The external JSON field names are the contract the shipped frontend speaks:
// register/login use the Spanish record names, update uses English names that
// map onto them. Internal naming stays English throughout.

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"contraseña"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contraseña"`
}

// UpdateUserRequest payload for partial updates. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserResponse is the public projection of an account. It never carries the
// password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

// LoginUserResponse is the slim projection returned on login: no id, no hash.
type LoginUserResponse struct {
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

// NewUserResponse projects a domain user.
func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

// NewUserListResponse projects a listing. An empty listing serializes as [].
func NewUserListResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}
