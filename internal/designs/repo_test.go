package designs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
	"github.com/luciaferrante/roomvibe-backend/pkg/pagination"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.DesignSelection{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepository(conn)
}

func TestUpsertCreatesThenReplaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.Upsert(ctx, userID, "kitchen", "flooring", []string{"oak"})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if len(first.Selections) != 1 || first.Selections[0] != "oak" {
		t.Fatalf("unexpected selections %v", first.Selections)
	}

	second, err := repo.Upsert(ctx, userID, "kitchen", "flooring", []string{"tile", "marble"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert must preserve id: %s != %s", second.ID, first.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("upsert must preserve created_at: %v != %v", second.CreatedAt, first.CreatedAt)
	}
	if len(second.Selections) != 2 || second.Selections[0] != "tile" || second.Selections[1] != "marble" {
		t.Fatalf("selections must be fully replaced, got %v", second.Selections)
	}

	records, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one record per key, got %d", len(records))
	}
}

func TestUpsertDistinctKeysCreateDistinctRecords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := repo.Upsert(ctx, userID, "kitchen", "flooring", []string{"oak"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := repo.Upsert(ctx, userID, "kitchen", "walls", []string{"sage"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := repo.Upsert(ctx, userID, "bedroom", "flooring", []string{"carpet"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	records, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestListByUserIsolation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	if _, err := repo.Upsert(ctx, alice, "kitchen", "flooring", []string{"oak"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := repo.Upsert(ctx, bob, "kitchen", "flooring", []string{"tile"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	records, err := repo.ListByUser(ctx, alice)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record for alice, got %d", len(records))
	}
	if records[0].UserID != alice {
		t.Fatalf("record owned by %s leaked into alice's list", records[0].UserID)
	}
}

func TestListByUserEmpty(t *testing.T) {
	repo := newTestRepo(t)

	records, err := repo.ListByUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty slice, got %v", records)
	}

	// An unauthenticated caller has no user id; that is still not an error.
	records, err = repo.ListByUser(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("list failed for nil user: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty slice for nil user, got %v", records)
	}
}

func TestListPageByUserWalksAllRecords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	rooms := []string{"kitchen", "bedroom", "bathroom", "living_room", "office"}
	for _, room := range rooms {
		if _, err := repo.Upsert(ctx, userID, room, "flooring", []string{"oak"}); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}

	seen := map[uuid.UUID]bool{}
	cursor := ""
	pages := 0
	for {
		records, next, err := repo.ListPageByUser(ctx, userID, pagination.Params{Limit: 2, Cursor: cursor})
		if err != nil {
			t.Fatalf("page %d failed: %v", pages, err)
		}
		for _, rec := range records {
			if seen[rec.ID] {
				t.Fatalf("record %s returned twice", rec.ID)
			}
			seen[rec.ID] = true
		}
		pages++
		if next == "" {
			break
		}
		if len(records) != 2 {
			t.Fatalf("non-final page must be full, got %d", len(records))
		}
		cursor = next
	}

	if len(seen) != len(rooms) {
		t.Fatalf("pagination lost records: saw %d of %d", len(seen), len(rooms))
	}
	if pages != 3 {
		t.Fatalf("expected 3 pages of 2, got %d", pages)
	}
}

func TestListPageByUserBadCursor(t *testing.T) {
	repo := newTestRepo(t)

	_, _, err := repo.ListPageByUser(context.Background(), uuid.New(), pagination.Params{Cursor: "not-base64!"})
	if err == nil {
		t.Fatal("expected error for malformed cursor")
	}
}
