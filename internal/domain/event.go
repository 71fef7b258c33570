package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the lifecycle status of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusActive    EventStatus = "active"
	EventStatusLive      EventStatus = "live"
	EventStatusEnded     EventStatus = "ended"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValidEventStatus reports whether s is one of the known statuses
func IsValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusDraft, EventStatusActive, EventStatusLive, EventStatusEnded, EventStatusCancelled:
		return true
	}
	return false
}

// Event represents one event owned by one admin
type Event struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	EventDate     time.Time   `json:"event_date"`
	Location      string      `json:"location"`
	TotalCapacity int         `json:"total_capacity"`
	TicketsIssued int         `json:"tickets_issued"`
	TicketsSold   int         `json:"tickets_sold"`
	Revenue       string      `json:"revenue"`
	Status        EventStatus `json:"status"`
	AdminID       string      `json:"admin_id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewEvent creates a new draft event with zeroed counters
func NewEvent(name, description string, eventDate time.Time, location string, totalCapacity int, adminID string) *Event {
	now := time.Now().UTC()
	return &Event{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   description,
		EventDate:     eventDate,
		Location:      location,
		TotalCapacity: totalCapacity,
		TicketsIssued: 0,
		TicketsSold:   0,
		Revenue:       "0",
		Status:        EventStatusDraft,
		AdminID:       adminID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
