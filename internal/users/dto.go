package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits the password hash.
type UserDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name          string
	Email         string
	ContactNumber string
	PasswordHash  string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		CreatedAt:     u.CreatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Name:          c.Name,
		Email:         c.Email,
		ContactNumber: c.ContactNumber,
		PasswordHash:  c.PasswordHash,
	}
}
