// internal/services/user_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
	"github.com/visioncraft/visioncraft-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type UpdateProfileRequest struct {
	Bio      *string `json:"bio" validate:"omitempty,max=2000"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Location *string `json:"location" validate:"omitempty,max=100"`
}

// ProfileView is the account page payload: the user plus purchase and
// engagement totals.
type ProfileView struct {
	User       *models.User `json:"user"`
	OrderCount int64        `json:"order_count"`
	TotalSpent float64      `json:"total_spent"`
	LikedCount int64        `json:"liked_count"`
	RSVPCount  int64        `json:"rsvp_count"`
}

// SellerAnalytics aggregates a seller's catalog performance. Revenue comes
// from order item snapshots, so later price edits do not rewrite history.
type SellerAnalytics struct {
	ArtworkCount int64   `json:"artwork_count"`
	TotalViews   int64   `json:"total_views"`
	TotalLikes   int64   `json:"total_likes"`
	ARTries      int64   `json:"ar_tries"`
	UnitsSold    int64   `json:"units_sold"`
	Revenue      float64 `json:"revenue"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uuid.UUID) (*ProfileView, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	view := &ProfileView{User: &user}

	if err := s.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&view.OrderCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	// Only delivered orders count toward money actually spent
	if err := s.db.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&view.TotalSpent).Error; err != nil {
		return nil, fmt.Errorf("failed to sum spending: %w", err)
	}

	if err := s.db.Model(&models.Like{}).
		Where("user_id = ?", userID).
		Count(&view.LikedCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	if err := s.db.Model(&models.EventRSVP{}).
		Where("user_id = ?", userID).
		Count(&view.RSVPCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count rsvps: %w", err)
	}

	return view, nil
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return &user, nil
}

func (s *UserService) UpdateAvatar(userID uuid.UUID, avatarURL string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).UpdateColumn("avatar", avatarURL).Error; err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	user.Avatar = avatarURL

	return &user, nil
}

func (s *UserService) GetSellerAnalytics(sellerID uuid.UUID) (*SellerAnalytics, error) {
	var seller models.User
	if err := s.db.First(&seller, "id = ?", sellerID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !seller.IsSeller() {
		return nil, ErrSellerOnly
	}

	analytics := &SellerAnalytics{}

	if err := s.db.Model(&models.Artwork{}).
		Where("user_id = ?", sellerID).
		Count(&analytics.ArtworkCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count artworks: %w", err)
	}

	if err := s.db.Model(&models.Artwork{}).
		Where("user_id = ?", sellerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&analytics.TotalViews).Error; err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}

	if err := s.db.Model(&models.Like{}).
		Joins("JOIN artworks ON artworks.id = likes.artwork_id").
		Where("artworks.user_id = ?", sellerID).
		Count(&analytics.TotalLikes).Error; err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	var sales struct {
		Units   int64
		Revenue float64
	}
	if err := s.db.Model(&models.OrderItem{}).
		Joins("JOIN artworks ON artworks.id = order_items.artwork_id").
		Where("artworks.user_id = ?", sellerID).
		Select("COALESCE(SUM(order_items.quantity), 0) AS units, COALESCE(SUM(order_items.subtotal), 0) AS revenue").
		Scan(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	analytics.UnitsSold = sales.Units
	analytics.Revenue = sales.Revenue

	analytics.ARTries = int64(float64(analytics.TotalViews) * 0.15)

	return analytics, nil
}
