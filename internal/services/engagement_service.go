// internal/services/engagement_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

// EngagementService handles the two toggle interactions, likes on artworks
// and RSVPs on events. Both are unique (user, target) pairs: toggling on
// creates the row, toggling off deletes it, and a duplicate-key error from a
// concurrent toggle counts as already-on.
type EngagementService struct {
	db *gorm.DB
}

type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type RSVPResult struct {
	RSVPed bool `json:"rsvped"`
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

func (s *EngagementService) ToggleLike(userID, artworkID uuid.UUID) (*LikeResult, error) {
	var artwork models.Artwork
	if err := s.db.First(&artwork, "id = ?", artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to load artwork: %w", err)
	}

	liked := false
	var existing models.Like
	err := s.db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Delete(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.Like{UserID: userID, ArtworkID: artworkID}
		if err := s.db.Create(&like).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create like: %w", err)
		}
		liked = true
	default:
		return nil, fmt.Errorf("failed to look up like: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Like{}).Where("artwork_id = ?", artworkID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &LikeResult{Liked: liked, LikeCount: count}, nil
}

func (s *EngagementService) ToggleRSVP(userID, eventID uuid.UUID) (*RSVPResult, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	var existing models.EventRSVP
	err := s.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Delete(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to remove rsvp: %w", err)
		}
		return &RSVPResult{RSVPed: false}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		rsvp := models.EventRSVP{UserID: userID, EventID: eventID}
		if err := s.db.Create(&rsvp).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create rsvp: %w", err)
		}
		return &RSVPResult{RSVPed: true}, nil
	default:
		return nil, fmt.Errorf("failed to look up rsvp: %w", err)
	}
}

// ListLikedArtworks returns the user's favorites, newest like first.
func (s *EngagementService) ListLikedArtworks(userID uuid.UUID) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := s.db.
		Joins("JOIN likes ON likes.artwork_id = artworks.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to list liked artworks: %w", err)
	}
	return artworks, nil
}

// IsLiked reports whether the user has liked the artwork.
func (s *EngagementService) IsLiked(userID, artworkID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up like: %w", err)
	}
	return count > 0, nil
}
