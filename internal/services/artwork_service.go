// internal/services/artwork_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

type ArtworkService struct {
	db *gorm.DB
}

type ArtworkListParams struct {
	Category string
	State    string
	SellerID string
	Query    string
	PriceMin float64
	PriceMax float64
	InStock  bool
	Sort     string // price-low, price-high, rating, likes, newest
}

type CreateArtworkRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Description   string  `json:"description" validate:"omitempty,max=5000"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required,max=50"`
	Image         string  `json:"image" validate:"omitempty,max=300"`
	ModelURL      string  `json:"model_url" validate:"omitempty,max=300"`
	ArtistName    string  `json:"artist_name" validate:"omitempty,max=100"`
	State         string  `json:"state" validate:"omitempty,max=100"`
	MakingProcess string  `json:"making_process" validate:"omitempty,max=5000"`
	StockQuantity *int    `json:"stock_quantity" validate:"omitempty,gte=0"`
}

type UpdateArtworkRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=5000"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Category      *string  `json:"category" validate:"omitempty,max=50"`
	Image         *string  `json:"image" validate:"omitempty,max=300"`
	ModelURL      *string  `json:"model_url" validate:"omitempty,max=300"`
	ArtistName    *string  `json:"artist_name" validate:"omitempty,max=100"`
	State         *string  `json:"state" validate:"omitempty,max=100"`
	MakingProcess *string  `json:"making_process" validate:"omitempty,max=5000"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

// ArtworkDetail is the catalog detail payload: the artwork itself plus the
// engagement numbers and a short shelf of related pieces.
type ArtworkDetail struct {
	Artwork   *models.Artwork  `json:"artwork"`
	LikeCount int64            `json:"like_count"`
	ARTries   int64            `json:"ar_tries"`
	Related   []models.Artwork `json:"related"`
}

func NewArtworkService(db *gorm.DB) *ArtworkService {
	return &ArtworkService{db: db}
}

// List returns active artworks matching the given filters. The catalog is
// small enough that the storefront renders it in full, so there is no
// pagination here.
func (s *ArtworkService) List(params ArtworkListParams) ([]models.Artwork, error) {
	query := s.db.Model(&models.Artwork{}).Where("artworks.is_active = ?", true)

	if params.Category != "" {
		query = query.Where("artworks.category = ?", params.Category)
	}
	if params.State != "" {
		query = query.Where("artworks.state = ?", params.State)
	}
	if params.SellerID != "" {
		sellerUUID, err := uuid.Parse(params.SellerID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		query = query.Where("artworks.user_id = ?", sellerUUID)
	}
	if params.Query != "" {
		// LOWER + LIKE instead of ILIKE so the same query runs on every backend
		pattern := "%" + strings.ToLower(params.Query) + "%"
		query = query.Where(
			"LOWER(artworks.title) LIKE ? OR LOWER(artworks.category) LIKE ? OR LOWER(artworks.artist_name) LIKE ? OR LOWER(artworks.description) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if params.PriceMin > 0 {
		query = query.Where("artworks.price >= ?", params.PriceMin)
	}
	if params.PriceMax > 0 {
		query = query.Where("artworks.price <= ?", params.PriceMax)
	}
	if params.InStock {
		query = query.Where("artworks.stock_quantity > 0")
	}

	switch params.Sort {
	case "price-low":
		query = query.Order("artworks.price ASC")
	case "price-high":
		query = query.Order("artworks.price DESC")
	case "rating":
		query = query.Order("artworks.rating DESC")
	case "likes":
		query = query.
			Select("artworks.*, COUNT(likes.id) AS like_count").
			Joins("LEFT JOIN likes ON likes.artwork_id = artworks.id").
			Group("artworks.id").
			Order("like_count DESC")
	default:
		query = query.Order("artworks.created_at DESC")
	}

	var artworks []models.Artwork
	if err := query.Preload("Creator").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}

// Get loads one artwork, bumps its view counter and assembles the detail
// payload. AR try-ons are not tracked per event; they are estimated from
// views at a fixed conversion rate.
func (s *ArtworkService) Get(artworkID uuid.UUID) (*ArtworkDetail, error) {
	var artwork models.Artwork
	if err := s.db.Preload("Creator").First(&artwork, "id = ?", artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to load artwork: %w", err)
	}

	// Count the view; best effort, a lost increment is fine
	s.db.Model(&artwork).UpdateColumn("views", gorm.Expr("views + 1"))
	artwork.Views++

	var likeCount int64
	if err := s.db.Model(&models.Like{}).Where("artwork_id = ?", artwork.ID).Count(&likeCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	var related []models.Artwork
	if err := s.db.
		Where("category = ? AND id != ? AND is_active = ?", artwork.Category, artwork.ID, true).
		Order("created_at DESC").
		Limit(4).
		Find(&related).Error; err != nil {
		return nil, fmt.Errorf("failed to load related artworks: %w", err)
	}

	return &ArtworkDetail{
		Artwork:   &artwork,
		LikeCount: likeCount,
		ARTries:   int64(float64(artwork.Views) * 0.15),
		Related:   related,
	}, nil
}

func (s *ArtworkService) Create(sellerID uuid.UUID, req *CreateArtworkRequest) (*models.Artwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var seller models.User
	if err := s.db.First(&seller, "id = ?", sellerID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !seller.IsSeller() {
		return nil, ErrSellerOnly
	}

	artwork := &models.Artwork{
		UserID:        sellerID,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		ModelURL:      req.ModelURL,
		ArtistName:    req.ArtistName,
		State:         req.State,
		MakingProcess: req.MakingProcess,
		StockQuantity: 10,
		IsActive:      true,
	}
	if req.ArtistName == "" {
		artwork.ArtistName = seller.Username
	}
	if req.StockQuantity != nil {
		artwork.StockQuantity = *req.StockQuantity
	}

	if err := s.db.Create(artwork).Error; err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	artwork.Creator = seller
	return artwork, nil
}

func (s *ArtworkService) Update(sellerID, artworkID uuid.UUID, req *UpdateArtworkRequest) (*models.Artwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	artwork, err := s.getOwned(sellerID, artworkID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ModelURL != nil {
		updates["model_url"] = *req.ModelURL
	}
	if req.ArtistName != nil {
		updates["artist_name"] = *req.ArtistName
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.MakingProcess != nil {
		updates["making_process"] = *req.MakingProcess
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(artwork).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update artwork: %w", err)
		}
	}

	return artwork, nil
}

// Delete soft-deletes the artwork and removes it from open carts so stale
// selections do not survive into checkout.
func (s *ArtworkService) Delete(sellerID, artworkID uuid.UUID) error {
	artwork, err := s.getOwned(sellerID, artworkID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", artwork.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart references: %w", err)
		}
		if err := tx.Delete(artwork).Error; err != nil {
			return fmt.Errorf("failed to delete artwork: %w", err)
		}
		return nil
	})
}

func (s *ArtworkService) ListBySeller(sellerID uuid.UUID) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := s.db.
		Where("user_id = ?", sellerID).
		Order("created_at DESC").
		Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to list seller artworks: %w", err)
	}
	return artworks, nil
}

func (s *ArtworkService) getOwned(sellerID, artworkID uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := s.db.First(&artwork, "id = ?", artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to load artwork: %w", err)
	}
	if artwork.UserID != sellerID {
		return nil, ErrNotArtworkOwner
	}
	return &artwork, nil
}
