package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DesignSelection stores the choice set a user saved for one room/category
// pair. (user_id, room, category) is the natural key; at most one row exists
// per triple.
type DesignSelection struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index:design_selections_user_id_idx;uniqueIndex:design_selections_user_room_category_key"`
	Room       string         `gorm:"column:room;type:text;not null;uniqueIndex:design_selections_user_room_category_key"`
	Category   string         `gorm:"column:category;type:text;not null;uniqueIndex:design_selections_user_room_category_key"`
	Selections pq.StringArray `gorm:"column:selections;type:text[];not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the id; GORM inserts do not rely on a server-side
// default, so the model also migrates on sqlite.
func (d *DesignSelection) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
