package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the canonical identity entity. Email carries a unique index
// so duplicate signups fail at the store level regardless of any prior
// existence check.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Email         string    `gorm:"type:text;not null;uniqueIndex:users_email_key"`
	ContactNumber string    `gorm:"column:contact_number;not null"`
	PasswordHash  string    `gorm:"column:password_hash;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the id; GORM inserts do not rely on a server-side
// default, so the model also migrates on sqlite.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
