package repository

import (
	"context"
	"sync"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

// MemoryAnalyticsRepository implements AnalyticsRepository using in-memory
// storage keyed by event ID.
type MemoryAnalyticsRepository struct {
	analytics map[string]*domain.Analytics
	mu        sync.RWMutex
}

// NewMemoryAnalyticsRepository creates a new in-memory analytics repository
func NewMemoryAnalyticsRepository() *MemoryAnalyticsRepository {
	return &MemoryAnalyticsRepository{
		analytics: make(map[string]*domain.Analytics),
	}
}

// GetByEventID retrieves the analytics snapshot for an event
func (r *MemoryAnalyticsRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Analytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analytics, exists := r.analytics[eventID]
	if !exists {
		return nil, domain.ErrAnalyticsNotFound
	}

	return cloneAnalytics(analytics), nil
}

// Save stores the analytics snapshot for an event
func (r *MemoryAnalyticsRepository) Save(ctx context.Context, analytics *domain.Analytics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.analytics[analytics.EventID] = cloneAnalytics(analytics)

	return nil
}

// Clear clears all data (for testing)
func (r *MemoryAnalyticsRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analytics = make(map[string]*domain.Analytics)
}

// Count returns the total number of analytics snapshots (for testing)
func (r *MemoryAnalyticsRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.analytics)
}

// cloneAnalytics deep-copies the map and slice fields so callers cannot
// mutate stored snapshots.
func cloneAnalytics(a *domain.Analytics) *domain.Analytics {
	c := *a
	c.HourlyRevenue = make(map[int]string, len(a.HourlyRevenue))
	for k, v := range a.HourlyRevenue {
		c.HourlyRevenue[k] = v
	}
	c.TopTicketTypes = append([]domain.TicketTypeCount(nil), a.TopTicketTypes...)
	if c.TopTicketTypes == nil {
		c.TopTicketTypes = []domain.TicketTypeCount{}
	}
	if a.GeographicDistribution != nil {
		c.GeographicDistribution = make(map[string]int, len(a.GeographicDistribution))
		for k, v := range a.GeographicDistribution {
			c.GeographicDistribution[k] = v
		}
	}
	if a.DeviceTypes != nil {
		c.DeviceTypes = make(map[string]int, len(a.DeviceTypes))
		for k, v := range a.DeviceTypes {
			c.DeviceTypes[k] = v
		}
	}
	return &c
}
