package designs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
	pkgerrors "github.com/luciaferrante/roomvibe-backend/pkg/errors"
	"github.com/luciaferrante/roomvibe-backend/pkg/pagination"
)

// Service defines the behavior needed by the design controllers.
type Service interface {
	Save(ctx context.Context, userID uuid.UUID, req SaveRequest) (*DesignSelectionDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]DesignSelectionDTO, error)
	ListPageForUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]DesignSelectionDTO, string, error)
}

// SaveRequest carries one normalized save operation. Selections must already
// be a flat list; boundary code turns a scalar into a one-element slice
// before it gets here.
type SaveRequest struct {
	Room       string
	Category   string
	Selections []string
}

type designRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, room, category string, selections []string) (*models.DesignSelection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DesignSelection, error)
	ListPageByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.DesignSelection, string, error)
}

type service struct {
	repo designRepository
}

// NewService constructs a designs service with the provided repository.
func NewService(repo designRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("designs repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Save(ctx context.Context, userID uuid.UUID, req SaveRequest) (*DesignSelectionDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	room := strings.TrimSpace(req.Room)
	if room == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "room is required")
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}

	selections := make([]string, 0, len(req.Selections))
	for _, sel := range req.Selections {
		if trimmed := strings.TrimSpace(sel); trimmed != "" {
			selections = append(selections, trimmed)
		}
	}
	if len(selections) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one selection is required")
	}

	record, err := s.repo.Upsert(ctx, userID, room, category, selections)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save design selection")
	}
	return FromModel(record), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]DesignSelectionDTO, error) {
	if userID == uuid.Nil {
		return []DesignSelectionDTO{}, nil
	}
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list design selections")
	}
	return FromModels(records), nil
}

// ListPageForUser serves clients that opt into cursor pagination. A bad
// cursor is the client's fault, not a server failure.
func (s *service) ListPageForUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]DesignSelectionDTO, string, error) {
	if userID == uuid.Nil {
		return []DesignSelectionDTO{}, "", nil
	}
	records, next, err := s.repo.ListPageByUser(ctx, userID, params)
	if err != nil {
		if params.Cursor != "" && strings.Contains(err.Error(), "cursor") {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list design selections")
	}
	return FromModels(records), next, nil
}
