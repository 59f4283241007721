// internal/services/event_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

type EventService struct {
	db *gorm.DB
}

type EventListParams struct {
	EventType string
	Upcoming  bool
}

// EventView wraps an event with the caller-specific RSVP flag and the tags
// split out of their stored form.
type EventView struct {
	models.Event
	Tags      []string `json:"tags"`
	RSVPCount int64    `json:"rsvp_count"`
	RSVPed    bool     `json:"rsvped"`
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// ListEvents returns active events. When userID is set, each view carries
// whether that user has RSVPed.
func (s *EventService) ListEvents(params EventListParams, userID *uuid.UUID) ([]EventView, error) {
	query := s.db.Model(&models.Event{}).Where("is_active = ?", true)

	if params.EventType != "" {
		query = query.Where("event_type = ?", params.EventType)
	}
	if params.Upcoming {
		query = query.Where("event_date >= ?", time.Now().Truncate(24*time.Hour))
	}

	var events []models.Event
	if err := query.Order("event_date ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	eventIDs := lo.Map(events, func(e models.Event, _ int) uuid.UUID { return e.ID })

	counts := map[uuid.UUID]int64{}
	if len(eventIDs) > 0 {
		var rows []struct {
			EventID uuid.UUID
			Count   int64
		}
		if err := s.db.Model(&models.EventRSVP{}).
			Select("event_id, COUNT(*) AS count").
			Where("event_id IN ?", eventIDs).
			Group("event_id").
			Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to count rsvps: %w", err)
		}
		for _, row := range rows {
			counts[row.EventID] = row.Count
		}
	}

	rsvped := map[uuid.UUID]bool{}
	if userID != nil && len(eventIDs) > 0 {
		var mine []models.EventRSVP
		if err := s.db.
			Where("user_id = ? AND event_id IN ?", *userID, eventIDs).
			Find(&mine).Error; err != nil {
			return nil, fmt.Errorf("failed to load rsvps: %w", err)
		}
		for _, r := range mine {
			rsvped[r.EventID] = true
		}
	}

	views := lo.Map(events, func(e models.Event, _ int) EventView {
		return EventView{
			Event:     e,
			Tags:      e.TagList(),
			RSVPCount: counts[e.ID],
			RSVPed:    rsvped[e.ID],
		}
	})
	return views, nil
}

func (s *EventService) GetEvent(eventID uuid.UUID, userID *uuid.UUID) (*EventView, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	view := EventView{Event: event, Tags: event.TagList()}

	if err := s.db.Model(&models.EventRSVP{}).
		Where("event_id = ?", event.ID).
		Count(&view.RSVPCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count rsvps: %w", err)
	}

	if userID != nil {
		var count int64
		if err := s.db.Model(&models.EventRSVP{}).
			Where("user_id = ? AND event_id = ?", *userID, event.ID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to load rsvp: %w", err)
		}
		view.RSVPed = count > 0
	}

	return &view, nil
}
