package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luciaferrante/roomvibe-backend/pkg/config"
	redisclient "github.com/luciaferrante/roomvibe-backend/pkg/redis"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

const sessionIDBytes = 32

// ErrNoSession covers missing, malformed, and expired sessions alike. Callers
// must not distinguish between them.
var ErrNoSession = errors.New("no active session")

// Identity is the authenticated principal a session resolves to.
type Identity struct {
	UserID   uuid.UUID
	UserName string
}

// Resolver is the read-only surface needed by middleware and controllers.
type Resolver interface {
	Resolve(ctx context.Context, sessionID string) (*Identity, error)
}

type record struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// Manager owns server-side session state in Redis. Sessions expire exactly
// TTL after creation; activity never extends them. The Redis key TTL reclaims
// storage, but correctness rests on the resolve-time ExpiresAt check.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
	now   func() time.Time
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{
		store: client,
		keyer: client,
		ttl:   cfg.TTL,
		now:   time.Now,
	}, nil
}

// Create issues an unguessable session identifier and persists the session
// record server-side. Prior sessions for the same user stay valid.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID, userName string) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("user id is required")
	}

	sessionID, err := generateSessionID()
	if err != nil {
		return "", err
	}

	rec := record{
		UserID:    userID,
		UserName:  userName,
		ExpiresAt: m.now().UTC().Add(m.ttl),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding session record: %w", err)
	}

	if err := m.store.Set(ctx, m.keyer.SessionKey(sessionID), payload, m.ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Resolve returns the identity behind sessionID, or ErrNoSession when the id
// is unknown, unreadable, or past its absolute expiry.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (*Identity, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrNoSession
	}

	key := m.keyer.SessionKey(sessionID)
	raw, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, ErrNoSession
	}
	if !m.now().UTC().Before(rec.ExpiresAt) {
		// Expired but not yet swept. Indistinguishable from never-existed.
		_ = m.store.Del(ctx, key)
		return nil, ErrNoSession
	}

	return &Identity{UserID: rec.UserID, UserName: rec.UserName}, nil
}

// Destroy removes the session. Destroying an absent session is not an error.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.SessionKey(sessionID))
}

func generateSessionID() (string, error) {
	bytes := make([]byte, sessionIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
