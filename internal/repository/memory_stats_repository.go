package repository

import (
	"context"
	"sync"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

// MemoryStatsRepository implements StatsRepository using in-memory storage.
// There is exactly one stats record per event.
type MemoryStatsRepository struct {
	stats map[string]*domain.EventStats // keyed by event ID
	mu    sync.RWMutex
}

// NewMemoryStatsRepository creates a new in-memory stats repository
func NewMemoryStatsRepository() *MemoryStatsRepository {
	return &MemoryStatsRepository{
		stats: make(map[string]*domain.EventStats),
	}
}

// Create creates the stats record paired with an event
func (r *MemoryStatsRepository) Create(ctx context.Context, stats *domain.EventStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stats[stats.EventID]; exists {
		return domain.ErrStatsAlreadyExist
	}

	s := *stats
	r.stats[stats.EventID] = &s

	return nil
}

// GetByEventID retrieves the stats record for an event
func (r *MemoryStatsRepository) GetByEventID(ctx context.Context, eventID string) (*domain.EventStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, exists := r.stats[eventID]
	if !exists {
		return nil, domain.ErrStatsNotFound
	}

	s := *stats
	return &s, nil
}

// Update overwrites an existing stats record
func (r *MemoryStatsRepository) Update(ctx context.Context, stats *domain.EventStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stats[stats.EventID]; !exists {
		return domain.ErrStatsNotFound
	}

	s := *stats
	r.stats[stats.EventID] = &s

	return nil
}

// Clear clears all data (for testing)
func (r *MemoryStatsRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = make(map[string]*domain.EventStats)
}

// Count returns the total number of stats records (for testing)
func (r *MemoryStatsRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stats)
}
