package service

import (
	"context"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/dto"
)

// EventService defines the interface for event lifecycle business logic
type EventService interface {
	// CreateEvent creates a new draft event and its paired stats record
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error)

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, id string) (*domain.Event, error)

	// ListAdminEvents retrieves all events owned by an admin
	ListAdminEvents(ctx context.Context, adminID string) ([]*domain.Event, error)

	// UpdateEvent merges the supplied patch fields into an event
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*domain.Event, error)

	// UpdateEventStatus sets the event status; any transition is accepted
	UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)

	// RecordTicketSale sells exactly one ticket, adds amount to revenue and
	// recomputes the event stats
	RecordTicketSale(ctx context.Context, id string, amount string) (*domain.Event, error)
}

// StatsService defines the interface for the statistics calculator
type StatsService interface {
	// GetStats retrieves the stored stats record for an event
	GetStats(ctx context.Context, eventID string) (*domain.EventStats, error)

	// Recompute fully rederives the stats record from the current event
	Recompute(ctx context.Context, eventID string) (*domain.EventStats, error)
}

// AnalyticsService defines the capability interface for analytics snapshots.
// The in-tree implementation serves placeholder data; a real provider can be
// substituted without changing callers.
type AnalyticsService interface {
	// GetAnalytics returns the analytics snapshot for an event, lazily
	// initializing it on first access
	GetAnalytics(ctx context.Context, eventID string) (*domain.Analytics, error)
}

// ReportService defines the interface for report generation and lookup
type ReportService interface {
	// GenerateReport assembles and appends a point-in-time report snapshot
	GenerateReport(ctx context.Context, eventID string, reportType domain.ReportType, createdBy string) (*domain.Report, error)

	// GetReport retrieves a report by ID
	GetReport(ctx context.Context, id string) (*domain.Report, error)

	// ListEventReports retrieves all reports for an event in creation order
	ListEventReports(ctx context.Context, eventID string) ([]*domain.Report, error)
}
