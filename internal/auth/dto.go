package auth

import (
	"github.com/luciaferrante/roomvibe-backend/internal/users"
)

// SignupRequest contains the payload required to create an account.
type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ContactNumber   string `json:"contact_number" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult contains the server-side session id and the user produced by a
// successful login. The session id travels back to the client only as a
// cookie.
type LoginResult struct {
	SessionID string
	User      *users.UserDTO
}
