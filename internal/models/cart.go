// internal/models/cart.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is a user's in-progress selection of an artwork. At most one row
// per (user, artwork); successful checkout deletes the rows, so the struct
// carries no soft-delete column.
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_artwork_cart"`
	ArtworkID uuid.UUID `json:"artwork_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_artwork_cart"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`

	Artwork Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

func (ci *CartItem) Subtotal() float64 {
	return ci.Artwork.Price * float64(ci.Quantity)
}
