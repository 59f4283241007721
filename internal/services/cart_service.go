// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/config"
	"github.com/visioncraft/visioncraft-backend/internal/models"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

type CartService struct {
	db  *gorm.DB
	cfg *config.Config
}

type AddToCartRequest struct {
	ArtworkID string `json:"artwork_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1,lte=99"`
}

// UpdateCartItemRequest carries the new quantity for a cart item. Zero and
// negative values are valid and remove the item, so no "required" tag here.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"lte=99"`
}

// CartView is the cart page payload with totals precomputed. The shipping
// fee is flat and waived for an empty cart.
type CartView struct {
	Items       []models.CartItem `json:"items"`
	ItemCount   int               `json:"item_count"`
	Subtotal    float64           `json:"subtotal"`
	ShippingFee float64           `json:"shipping_fee"`
	Total       float64           `json:"total"`
}

// CartItemUpdate reports what a quantity change did to the item.
type CartItemUpdate struct {
	Item    *models.CartItem `json:"item,omitempty"`
	Removed bool             `json:"removed"`
}

func NewCartService(db *gorm.DB, cfg *config.Config) *CartService {
	return &CartService{db: db, cfg: cfg}
}

// AddToCart adds an artwork to the user's cart, or bumps the quantity when
// the artwork is already there.
func (s *CartService) AddToCart(userID uuid.UUID, req *AddToCartRequest) (*models.CartItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	artworkID, err := uuid.Parse(req.ArtworkID)
	if err != nil {
		return nil, ErrArtworkNotFound
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var artwork models.Artwork
	if err := s.db.First(&artwork, "id = ?", artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to load artwork: %w", err)
	}
	if !artwork.IsActive {
		return nil, ErrArtworkInactive
	}
	if !artwork.InStock() {
		return nil, ErrArtworkNoStock
	}

	var item models.CartItem
	err = s.db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&item).Error
	switch {
	case err == nil:
		if err := s.db.Model(&item).UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		item.Quantity += quantity
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:    userID,
			ArtworkID: artworkID,
			Quantity:  quantity,
		}
		if err := s.db.Create(&item).Error; err != nil {
			// Concurrent add of the same artwork; fold into the existing row
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.AddToCart(userID, req)
			}
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	item.Artwork = artwork
	return &item, nil
}

// UpdateItem sets a cart item's quantity. A quantity of zero or less removes
// the item, which lets the cart page use a single endpoint for both actions.
func (s *CartService) UpdateItem(userID, itemID uuid.UUID, req *UpdateCartItemRequest) (*CartItemUpdate, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.getOwned(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		if err := s.db.Delete(item).Error; err != nil {
			return nil, fmt.Errorf("failed to remove cart item: %w", err)
		}
		return &CartItemUpdate{Removed: true}, nil
	}

	if err := s.db.Model(item).UpdateColumn("quantity", req.Quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	item.Quantity = req.Quantity

	return &CartItemUpdate{Item: item}, nil
}

func (s *CartService) RemoveItem(userID, itemID uuid.UUID) error {
	item, err := s.getOwned(userID, itemID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (s *CartService) GetCart(userID uuid.UUID) (*CartView, error) {
	var items []models.CartItem
	if err := s.db.
		Preload("Artwork").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	view := &CartView{Items: items}
	for i := range items {
		view.ItemCount += items[i].Quantity
		view.Subtotal += items[i].Subtotal()
	}
	if len(items) > 0 {
		view.ShippingFee = s.cfg.Payment.ShippingFee
	}
	view.Total = view.Subtotal + view.ShippingFee

	return view, nil
}

func (s *CartService) getOwned(userID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.Preload("Artwork").First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	if item.UserID != userID {
		return nil, ErrNotCartOwner
	}
	return &item, nil
}
