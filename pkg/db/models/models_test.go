package models

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The repo test suites run against sqlite, whose DDL parser rejects function
// defaults like gen_random_uuid(). Both models must migrate there; ids come
// from the BeforeCreate hooks instead of a column default.
func TestModelsMigrateOnSQLite(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := conn.AutoMigrate(&User{}, &DesignSelection{}); err != nil {
		t.Fatalf("models must migrate on sqlite: %v", err)
	}

	user := &User{
		Name:          "Ada",
		Email:         "ada@example.com",
		ContactNumber: "555-0100",
		PasswordHash:  "hash",
	}
	if err := conn.Create(user).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatal("expected BeforeCreate to assign the user id")
	}

	selection := &DesignSelection{
		UserID:     user.ID,
		Room:       "kitchen",
		Category:   "flooring",
		Selections: []string{"oak"},
	}
	if err := conn.Create(selection).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if selection.ID == uuid.Nil {
		t.Fatal("expected BeforeCreate to assign the selection id")
	}
}
