// internal/models/artwork.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artwork struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"size:50;not null;index"`

	// Media paths returned by the storage service
	Image    string `json:"image" gorm:"size:300"`
	ModelURL string `json:"model_url" gorm:"size:300"`

	// Artisan information
	ArtistName    string `json:"artist_name" gorm:"size:100"`
	State         string `json:"state" gorm:"size:100;index"`
	MakingProcess string `json:"making_process" gorm:"type:text"`

	// Stats
	Views  int64   `json:"views" gorm:"default:0"`
	Rating float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`

	// Inventory. No column default here: gorm skips zero-valued fields that
	// carry one, which would turn an explicit stock of 0 into the default.
	StockQuantity int  `json:"stock_quantity"`
	IsActive      bool `json:"is_active" gorm:"default:true;index"`

	// Relationships
	Creator   User       `json:"creator,omitempty" gorm:"foreignKey:UserID"`
	Likes     []Like     `json:"likes,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
	CartItems []CartItem `json:"cart_items,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
}

func (a *Artwork) InStock() bool {
	return a.StockQuantity > 0
}

// Like marks an artwork as a user's favorite. One row per (user, artwork);
// toggling off deletes the row outright, so no soft-delete column here.
type Like struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_artwork_like"`
	ArtworkID uuid.UUID `json:"artwork_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_artwork_like"`
	CreatedAt time.Time `json:"created_at"`

	Artwork Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
