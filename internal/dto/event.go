package dto

import "time"

// CreateEventRequest represents the request to create a new event.
// Every field is required, matching the boundary presence checks.
type CreateEventRequest struct {
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description" binding:"required"`
	EventDate     time.Time `json:"event_date" binding:"required"`
	Location      string    `json:"location" binding:"required"`
	TotalCapacity int       `json:"total_capacity" binding:"required,gt=0"`
	AdminID       string    `json:"admin_id" binding:"required"`
}

// UpdateEventRequest is the typed patch for an event. Only the listed
// fields are mutable; identifier, status and counters are not patchable
// through this shape. Nil fields keep their prior values.
type UpdateEventRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	EventDate     *time.Time `json:"event_date"`
	Location      *string    `json:"location"`
	TotalCapacity *int       `json:"total_capacity" binding:"omitempty,gt=0"`
}

// UpdateEventStatusRequest represents the request to change event status
type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft active live ended cancelled"`
}

// TicketSaleRequest records one ticket sale. Amount is a decimal string;
// one request always sells exactly one ticket regardless of the amount.
type TicketSaleRequest struct {
	Amount string `json:"amount" binding:"required"`
}
