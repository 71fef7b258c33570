package repository

import (
	"context"
	"sync"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

// MemoryReportRepository implements ReportRepository using in-memory storage.
// Reports are immutable once appended, so lookups return the stored value
// behind a top-level copy.
type MemoryReportRepository struct {
	reports map[string]*domain.Report
	order   []string            // report IDs in creation order
	byEvent map[string][]string // eventID -> []reportID in creation order
	mu      sync.RWMutex
}

// NewMemoryReportRepository creates a new in-memory report repository
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[string]*domain.Report),
		byEvent: make(map[string][]string),
	}
}

// Create appends a new report
func (r *MemoryReportRepository) Create(ctx context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := *report
	r.reports[report.ID] = &rep
	r.order = append(r.order, report.ID)
	r.byEvent[report.EventID] = append(r.byEvent[report.EventID], report.ID)

	return nil
}

// GetByID retrieves a report by its ID
func (r *MemoryReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, domain.ErrReportNotFound
	}

	rep := *report
	return &rep, nil
}

// GetByEventID retrieves all reports for an event, in creation order
func (r *MemoryReportRepository) GetByEventID(ctx context.Context, eventID string) ([]*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byEvent[eventID]
	result := make([]*domain.Report, 0, len(ids))
	for _, id := range ids {
		if report, exists := r.reports[id]; exists {
			rep := *report
			result = append(result, &rep)
		}
	}

	return result, nil
}

// List returns all reports in creation order
func (r *MemoryReportRepository) List(ctx context.Context) ([]*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Report, 0, len(r.order))
	for _, id := range r.order {
		if report, exists := r.reports[id]; exists {
			rep := *report
			result = append(result, &rep)
		}
	}

	return result, nil
}

// Clear clears all data (for testing)
func (r *MemoryReportRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = make(map[string]*domain.Report)
	r.order = nil
	r.byEvent = make(map[string][]string)
}

// Count returns the total number of reports (for testing)
func (r *MemoryReportRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}
