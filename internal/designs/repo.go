package designs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
	"github.com/luciaferrante/roomvibe-backend/pkg/pagination"
)

// Repository encapsulates design selection persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a designs repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const upsertQuery = `
INSERT INTO design_selections (id, user_id, room, category, selections, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, room, category)
DO UPDATE SET selections = excluded.selections, updated_at = excluded.updated_at
RETURNING id, user_id, room, category, selections, created_at, updated_at`

// Upsert writes the selection set for one (user, room, category) key as a
// single statement. An existing row keeps its id and created_at; its
// selections are fully replaced, never merged. Concurrent upserts on the same
// key serialize on the unique constraint.
func (r *Repository) Upsert(ctx context.Context, userID uuid.UUID, room, category string, selections []string) (*models.DesignSelection, error) {
	if userID == uuid.Nil {
		return nil, gorm.ErrInvalidValue
	}

	now := time.Now().UTC()
	var row models.DesignSelection
	err := r.db.WithContext(ctx).
		Raw(upsertQuery,
			uuid.New(), userID, room, category, pq.StringArray(selections), now, now,
		).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByUser returns every selection record owned by userID. Order is
// unspecified; callers must not depend on it.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DesignSelection, error) {
	records := []models.DesignSelection{}
	if userID == uuid.Nil {
		return records, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListPageByUser returns one keyset page ordered by (created_at, id) and the
// cursor for the next page, or "" on the last page.
func (r *Repository) ListPageByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.DesignSelection, string, error) {
	records := []models.DesignSelection{}
	if userID == uuid.Nil {
		return records, "", nil
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	limit := pagination.NormalizeLimit(params.Limit)
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Limit(pagination.LimitWithBuffer(params.Limit))
	if cursor != nil {
		query = query.Where("created_at > ? OR (created_at = ? AND id > ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(records) > limit {
		records = records[:limit]
		last := records[limit-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return records, next, nil
}
