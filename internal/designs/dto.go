package designs

import (
	"time"

	"github.com/google/uuid"

	"github.com/luciaferrante/roomvibe-backend/pkg/db/models"
)

// DesignSelectionDTO is the transport shape returned to the choices view.
type DesignSelectionDTO struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Room       string    `json:"room"`
	Category   string    `json:"category"`
	Selections []string  `json:"selections"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModel(d *models.DesignSelection) *DesignSelectionDTO {
	if d == nil {
		return nil
	}
	return &DesignSelectionDTO{
		ID:         d.ID,
		UserID:     d.UserID,
		Room:       d.Room,
		Category:   d.Category,
		Selections: append([]string(nil), d.Selections...),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func FromModels(records []models.DesignSelection) []DesignSelectionDTO {
	dtos := make([]DesignSelectionDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *FromModel(&records[i]))
	}
	return dtos
}
