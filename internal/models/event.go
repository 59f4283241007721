// internal/models/event.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a read-mostly workshop/fair record shown on the events calendar.
type Event struct {
	BaseModel
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	EventType   EventType `json:"event_type" gorm:"type:varchar(50);not null"`

	EventDate time.Time `json:"event_date" gorm:"type:date;not null;index"`
	EventTime string    `json:"event_time" gorm:"size:20"`

	Location string `json:"location" gorm:"size:200;not null"`
	Address  string `json:"address" gorm:"type:text"`

	// Comma-separated tags
	Tags string `json:"tags" gorm:"size:300"`

	IsActive bool `json:"is_active" gorm:"default:true;index"`

	RSVPs []EventRSVP `json:"rsvps,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (e *Event) TagList() []string {
	var tags []string
	for _, tag := range strings.Split(e.Tags, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// EventRSVP is a unique (user, event) pair toggled on and off.
type EventRSVP struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_event_rsvp"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_event_rsvp"`
	CreatedAt time.Time `json:"created_at"`

	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

func (r *EventRSVP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
