package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/luciaferrante/roomvibe-backend/pkg/db"
	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return NewRepository(conn)
}

func TestCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ContactNumber: "555-0101",
		PasswordHash:  "$2a$10$fakehash",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Ada Lovelace", byEmail.Name)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
}

func TestFindByEmailNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{Name: "Ada", Email: "ada@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{Name: "Imposter", Email: "ada@example.com", PasswordHash: "y"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, "users_email_key"))
}
