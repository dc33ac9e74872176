package designs

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
	pkgerrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
	"github.com/luciaferrante/roomvibe-backend/pkg/pagination"
)

type stubDesignRepository struct {
	upserted   *models.DesignSelection
	upsertErr  error
	lastRoom   string
	lastCat    string
	lastSels   []string
	listResp   []models.DesignSelection
	listErr    error
	nextCursor string
}

func (s *stubDesignRepository) Upsert(ctx context.Context, userID uuid.UUID, room, category string, selections []string) (*models.DesignSelection, error) {
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	s.lastRoom = room
	s.lastCat = category
	s.lastSels = selections
	record := &models.DesignSelection{
		ID:         uuid.New(),
		UserID:     userID,
		Room:       room,
		Category:   category,
		Selections: selections,
	}
	s.upserted = record
	return record, nil
}

func (s *stubDesignRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DesignSelection, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResp, nil
}

func (s *stubDesignRepository) ListPageByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.DesignSelection, string, error) {
	if s.listErr != nil {
		return nil, "", s.listErr
	}
	return s.listResp, s.nextCursor, nil
}

func TestSaveTrimsAndStores(t *testing.T) {
	repo := &stubDesignRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	dto, err := svc.Save(context.Background(), uuid.New(), SaveRequest{
		Room:       "  kitchen ",
		Category:   "flooring",
		Selections: []string{" oak ", "", "tile"},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if repo.lastRoom != "kitchen" {
		t.Fatalf("room not trimmed: %q", repo.lastRoom)
	}
	if len(repo.lastSels) != 2 || repo.lastSels[0] != "oak" || repo.lastSels[1] != "tile" {
		t.Fatalf("selections not normalized: %v", repo.lastSels)
	}
	if len(dto.Selections) != 2 {
		t.Fatalf("unexpected dto selections %v", dto.Selections)
	}
}

func TestSaveValidation(t *testing.T) {
	svc, _ := NewService(&stubDesignRepository{})
	userID := uuid.New()

	cases := []struct {
		name string
		req  SaveRequest
	}{
		{"missing room", SaveRequest{Category: "flooring", Selections: []string{"oak"}}},
		{"missing category", SaveRequest{Room: "kitchen", Selections: []string{"oak"}}},
		{"no selections", SaveRequest{Room: "kitchen", Category: "flooring"}},
		{"only blank selections", SaveRequest{Room: "kitchen", Category: "flooring", Selections: []string{" ", ""}}},
	}
	for _, tc := range cases {
		_, err := svc.Save(context.Background(), userID, tc.req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestSaveRequiresUser(t *testing.T) {
	svc, _ := NewService(&stubDesignRepository{})
	_, err := svc.Save(context.Background(), uuid.Nil, SaveRequest{
		Room: "kitchen", Category: "flooring", Selections: []string{"oak"},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestListPageForUserForwardsCursor(t *testing.T) {
	svc, _ := NewService(&stubDesignRepository{
		listResp:   []models.DesignSelection{{ID: uuid.New()}},
		nextCursor: "cursor-2",
	})

	dtos, next, err := svc.ListPageForUser(context.Background(), uuid.New(), pagination.Params{Limit: 1})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if len(dtos) != 1 || next != "cursor-2" {
		t.Fatalf("unexpected page: %d items, cursor %q", len(dtos), next)
	}

	// Anonymous callers get an empty page with no cursor.
	dtos, next, err = svc.ListPageForUser(context.Background(), uuid.Nil, pagination.Params{})
	if err != nil || len(dtos) != 0 || next != "" {
		t.Fatalf("unexpected anonymous page: %v %q %v", dtos, next, err)
	}
}

func TestListForUserAnonymousIsEmpty(t *testing.T) {
	svc, _ := NewService(&stubDesignRepository{
		listResp: []models.DesignSelection{{ID: uuid.New()}},
	})

	dtos, err := svc.ListForUser(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(dtos) != 0 {
		t.Fatalf("anonymous caller must get an empty list, got %d", len(dtos))
	}
}
