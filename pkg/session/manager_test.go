package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

type stubStore struct {
	data    map[string]string
	ttls    map[string]time.Duration
	setErr  error
	getErr  error
	deleted []string
}

func newStubStore() *stubStore {
	return &stubStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *stubStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	switch v := value.(type) {
	case []byte:
		s.data[key] = string(v)
	case string:
		s.data[key] = v
	}
	s.ttls[key] = ttl
	return nil
}

func (s *stubStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	val, ok := s.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (s *stubStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.data, key)
		s.deleted = append(s.deleted, key)
	}
	return nil
}

type stubKeyer struct{}

func (stubKeyer) SessionKey(id string) string { return "rv:session:" + id }

func newTestManager(store *stubStore, now func() time.Time) *Manager {
	m := &Manager{
		store: store,
		keyer: stubKeyer{},
		ttl:   24 * time.Hour,
		now:   now,
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func TestCreateAndResolve(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store, nil)

	userID := uuid.New()
	sid, err := m.Create(context.Background(), userID, "Ada")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sid == "" {
		t.Fatal("expected non-empty session id")
	}
	if got := store.ttls["rv:session:"+sid]; got != 24*time.Hour {
		t.Fatalf("expected 24h redis ttl, got %v", got)
	}

	identity, err := m.Resolve(context.Background(), sid)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity.UserID != userID || identity.UserName != "Ada" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestCreateProducesDistinctIDs(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store, nil)

	first, err := m.Create(context.Background(), uuid.New(), "a")
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := m.Create(context.Background(), uuid.New(), "b")
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first == second {
		t.Fatal("session ids must be unique")
	}
}

func TestResolveUnknownSession(t *testing.T) {
	m := newTestManager(newStubStore(), nil)

	if _, err := m.Resolve(context.Background(), "never-issued"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := m.Resolve(context.Background(), ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for blank id, got %v", err)
	}
}

func TestResolveExpiredSessionIsAbsent(t *testing.T) {
	store := newStubStore()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(store, func() time.Time { return current })

	sid, err := m.Create(context.Background(), uuid.New(), "Ada")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Still valid just before the absolute deadline.
	current = current.Add(24*time.Hour - time.Second)
	if _, err := m.Resolve(context.Background(), sid); err != nil {
		t.Fatalf("session should still resolve before expiry: %v", err)
	}

	// Absolute TTL: activity above must not have extended the deadline.
	current = current.Add(2 * time.Second)
	if _, err := m.Resolve(context.Background(), sid); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after expiry, got %v", err)
	}
}

func TestResolveMalformedRecord(t *testing.T) {
	store := newStubStore()
	store.data["rv:session:garbled"] = "{not-json"
	m := newTestManager(store, nil)

	if _, err := m.Resolve(context.Background(), "garbled"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for unreadable record, got %v", err)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	store := newStubStore()
	m := newTestManager(store, nil)

	sid, err := m.Create(context.Background(), uuid.New(), "Ada")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := m.Destroy(context.Background(), sid); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}
	if err := m.Destroy(context.Background(), sid); err != nil {
		t.Fatalf("second destroy must not error: %v", err)
	}
	if _, err := m.Resolve(context.Background(), sid); !errors.Is(err, ErrNoSession) {
		t.Fatalf("destroyed session must not resolve, got %v", err)
	}
}

func TestCreateRequiresUser(t *testing.T) {
	m := newTestManager(newStubStore(), nil)
	if _, err := m.Create(context.Background(), uuid.Nil, "ghost"); err == nil {
		t.Fatal("expected error for nil user id")
	}
}
