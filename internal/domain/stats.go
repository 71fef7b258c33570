package domain

import "time"

// EventStats is the derived per-event aggregate. Every field is fully
// recomputed from the associated event on each recompute; no incremental
// state is kept here.
type EventStats struct {
	EventID            string    `json:"event_id"`
	TotalTickets       int       `json:"total_tickets"`
	TicketsSold        int       `json:"tickets_sold"`
	TicketsUsed        int       `json:"tickets_used"`
	TotalRevenue       string    `json:"total_revenue"`
	AverageTicketPrice string    `json:"average_ticket_price"`
	AttendanceRate     float64   `json:"attendance_rate"`
	SelloutRate        float64   `json:"sellout_rate"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewEventStats creates a zeroed stats record paired with an event
func NewEventStats(eventID string) *EventStats {
	now := time.Now().UTC()
	return &EventStats{
		EventID:            eventID,
		TotalTickets:       0,
		TicketsSold:        0,
		TicketsUsed:        0,
		TotalRevenue:       "0",
		AverageTicketPrice: "0",
		AttendanceRate:     0,
		SelloutRate:        0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
