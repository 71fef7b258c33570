package service

import (
	"context"
	"errors"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/metrics"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/repository"
)

// analyticsService implements AnalyticsService with placeholder data. The
// snapshot is initialized lazily on first access, for any event ID, and its
// funnel values stay fixed for the process lifetime.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new placeholder AnalyticsService
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
	}
}

// GetAnalytics returns the analytics snapshot for an event, creating it
// with the fixed funnel constants when absent
func (s *analyticsService) GetAnalytics(ctx context.Context, eventID string) (*domain.Analytics, error) {
	analytics, err := s.analyticsRepo.GetByEventID(ctx, eventID)
	if err == nil {
		return analytics, nil
	}
	if !errors.Is(err, domain.ErrAnalyticsNotFound) {
		return nil, err
	}

	analytics = domain.NewAnalytics(eventID)
	if err := s.analyticsRepo.Save(ctx, analytics); err != nil {
		return nil, err
	}

	metrics.AnalyticsSnapshots.Inc(ctx)

	return analytics, nil
}
