package repository

import (
	"context"
	"sync"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

// MemoryEventRepository implements EventRepository using in-memory storage.
// Events are never deleted.
type MemoryEventRepository struct {
	events  map[string]*domain.Event
	order   []string            // event IDs in insertion order
	byAdmin map[string][]string // adminID -> []eventID in insertion order
	mu      sync.RWMutex
}

// NewMemoryEventRepository creates a new in-memory event repository
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		events:  make(map[string]*domain.Event),
		byAdmin: make(map[string][]string),
	}
}

// Create creates a new event record
func (r *MemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[event.ID]; exists {
		return domain.ErrEventAlreadyExists
	}

	// Clone to avoid external modifications
	e := *event
	r.events[event.ID] = &e
	r.order = append(r.order, event.ID)
	r.byAdmin[event.AdminID] = append(r.byAdmin[event.AdminID], event.ID)

	return nil
}

// GetByID retrieves an event by its ID
func (r *MemoryEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, exists := r.events[id]
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	// Return a copy
	e := *event
	return &e, nil
}

// GetByAdminID retrieves all events owned by an admin, in insertion order
func (r *MemoryEventRepository) GetByAdminID(ctx context.Context, adminID string) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byAdmin[adminID]
	result := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		if event, exists := r.events[id]; exists {
			e := *event
			result = append(result, &e)
		}
	}

	return result, nil
}

// Update overwrites an existing event. The admin index stays valid because
// the owning admin is not patchable.
func (r *MemoryEventRepository) Update(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[event.ID]; !exists {
		return domain.ErrEventNotFound
	}

	e := *event
	r.events[event.ID] = &e

	return nil
}

// List returns all events in insertion order
func (r *MemoryEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		if event, exists := r.events[id]; exists {
			e := *event
			result = append(result, &e)
		}
	}

	return result, nil
}

// Clear clears all data (for testing)
func (r *MemoryEventRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make(map[string]*domain.Event)
	r.order = nil
	r.byAdmin = make(map[string][]string)
}

// Count returns the total number of events (for testing)
func (r *MemoryEventRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}
