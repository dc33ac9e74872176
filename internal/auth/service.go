package auth

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luciaferrante/roomvibe-backend/internal/users"
	"github.com/luciaferrante/roomvibe-backend/pkg/config"
	"github.com/luciaferrante/roomvibe-backend/pkg/db"
	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
	appErrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
	"github.com/luciaferrante/roomvibe-backend/pkg/security"
)

const emailUniqueConstraint = "users_email_key"

// loginFailedMessage is deliberately identical for unknown emails and wrong
// passwords so the endpoint does not confirm which addresses have accounts.
const loginFailedMessage = "invalid email or password"

// Service exposes account creation and credential verification.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*users.UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type sessionManager interface {
	Create(ctx context.Context, userID uuid.UUID, userName string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}

// ServiceParams wires the auth service's dependencies.
type ServiceParams struct {
	TxRunner txRunner
	// Users serves reads outside of any transaction.
	Users userRepository
	// UserRepoFactory binds a repo to the signup transaction so the
	// existence check and the insert observe the same snapshot.
	UserRepoFactory func(tx *gorm.DB) userRepository
	Sessions        sessionManager
	Password        config.PasswordConfig
}

type service struct {
	tx          txRunner
	users       userRepository
	repoFactory func(tx *gorm.DB) userRepository
	sessions    sessionManager
	password    config.PasswordConfig
}

// NewService validates params and returns the auth service. Callers using the
// default GORM repo can pass a nil UserRepoFactory.
func NewService(params ServiceParams) (Service, error) {
	if params.TxRunner == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	factory := params.UserRepoFactory
	if factory == nil {
		factory = func(tx *gorm.DB) userRepository {
			return users.NewRepository(tx)
		}
	}
	return &service{
		tx:          params.TxRunner,
		users:       params.Users,
		repoFactory: factory,
		sessions:    params.Sessions,
		password:    params.Password,
	}, nil
}

// Signup creates an account. It never logs the user in; the caller redirects
// to the login page on success.
func (s *service) Signup(ctx context.Context, req SignupRequest) (*users.UserDTO, error) {
	if req.Password != req.ConfirmPassword {
		return nil, appErrors.New(appErrors.CodeValidation, "passwords do not match")
	}

	email := NormalizeEmail(req.Email)

	hash, err := security.HashPassword(req.Password, s.password)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.CodeInternal, err, "hashing password")
	}

	var created *models.User
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repoFactory(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return appErrors.New(appErrors.CodeConflict, "email already registered")
		} else if !stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.Wrap(appErrors.CodeInternal, err, "checking existing email")
		}

		created, err = repo.Create(ctx, users.CreateUserDTO{
			Name:          strings.TrimSpace(req.Name),
			Email:         email,
			ContactNumber: strings.TrimSpace(req.ContactNumber),
			PasswordHash:  hash,
		})
		if err != nil {
			// Two signups can race past the existence check; the
			// unique index is the arbiter.
			if db.IsUniqueViolation(err, emailUniqueConstraint) {
				return appErrors.New(appErrors.CodeConflict, "email already registered")
			}
			return appErrors.Wrap(appErrors.CodeInternal, err, "creating user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users.FromModel(created), nil
}

// Login verifies credentials and opens a server-side session.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := NormalizeEmail(req.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.New(appErrors.CodeUnauthorized, loginFailedMessage)
		}
		return nil, appErrors.Wrap(appErrors.CodeInternal, err, "looking up user")
	}

	if !security.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, appErrors.New(appErrors.CodeUnauthorized, loginFailedMessage)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID, user.Name)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.CodeDependency, err, "creating session")
	}

	return &LoginResult{SessionID: sessionID, User: users.FromModel(user)}, nil
}

// Logout tears down the session. A blank or unknown session id is a no-op.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return appErrors.Wrap(appErrors.CodeDependency, err, "destroying session")
	}
	return nil
}

// NormalizeEmail lowercases and trims the address so lookups and the unique
// index agree on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
