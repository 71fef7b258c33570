package repository

import (
	"context"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event record
	Create(ctx context.Context, event *domain.Event) error

	// GetByID retrieves an event by its ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)

	// GetByAdminID retrieves all events owned by an admin, in insertion order
	GetByAdminID(ctx context.Context, adminID string) ([]*domain.Event, error)

	// Update overwrites an existing event
	Update(ctx context.Context, event *domain.Event) error

	// List returns all events in insertion order
	List(ctx context.Context) ([]*domain.Event, error)
}

// StatsRepository defines the interface for derived-stats data access
type StatsRepository interface {
	// Create creates the stats record paired with an event
	Create(ctx context.Context, stats *domain.EventStats) error

	// GetByEventID retrieves the stats record for an event
	GetByEventID(ctx context.Context, eventID string) (*domain.EventStats, error)

	// Update overwrites an existing stats record
	Update(ctx context.Context, stats *domain.EventStats) error
}

// AnalyticsRepository defines the interface for analytics snapshots
type AnalyticsRepository interface {
	// GetByEventID retrieves the analytics snapshot for an event
	GetByEventID(ctx context.Context, eventID string) (*domain.Analytics, error)

	// Save stores the analytics snapshot for an event
	Save(ctx context.Context, analytics *domain.Analytics) error
}

// ReportRepository defines the interface for report snapshots.
// Reports are append-only.
type ReportRepository interface {
	// Create appends a new report
	Create(ctx context.Context, report *domain.Report) error

	// GetByID retrieves a report by its ID
	GetByID(ctx context.Context, id string) (*domain.Report, error)

	// GetByEventID retrieves all reports for an event, in creation order
	GetByEventID(ctx context.Context, eventID string) ([]*domain.Report, error)

	// List returns all reports in creation order
	List(ctx context.Context) ([]*domain.Report, error)
}
