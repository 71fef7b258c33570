package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/metrics"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/repository"
)

// attendanceRatio is the simulated share of sold tickets that get used.
// There is no real attendance data source.
const attendanceRatio = 0.8

// statsService implements StatsService
type statsService struct {
	eventRepo repository.EventRepository
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(eventRepo repository.EventRepository, statsRepo repository.StatsRepository) StatsService {
	return &statsService{
		eventRepo: eventRepo,
		statsRepo: statsRepo,
	}
}

// GetStats retrieves the stored stats record for an event
func (s *statsService) GetStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	return s.statsRepo.GetByEventID(ctx, eventID)
}

// Recompute fully rederives every stats field from the current event state.
// It is idempotent: recomputing twice with no intervening mutation yields
// identical stats apart from the update timestamp.
func (s *statsService) Recompute(ctx context.Context, eventID string) (*domain.EventStats, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	stats.TotalTickets = event.TotalCapacity
	stats.TicketsSold = event.TicketsSold
	stats.TicketsUsed = int(float64(event.TicketsSold) * attendanceRatio)
	stats.TotalRevenue = event.Revenue

	if event.TicketsSold > 0 {
		revenue, err := decimal.NewFromString(event.Revenue)
		if err != nil {
			return nil, domain.ErrInvalidAmount
		}
		stats.AverageTicketPrice = revenue.Div(decimal.NewFromInt(int64(event.TicketsSold))).StringFixed(2)
		stats.AttendanceRate = float64(stats.TicketsUsed) / float64(event.TicketsSold) * 100
	} else {
		stats.AverageTicketPrice = "0"
		stats.AttendanceRate = 0
	}

	if event.TotalCapacity > 0 {
		stats.SelloutRate = float64(event.TicketsSold) / float64(event.TotalCapacity) * 100
	} else {
		stats.SelloutRate = 0
	}

	stats.UpdatedAt = time.Now().UTC()

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, err
	}

	metrics.StatsRecomputes.Inc(ctx)

	return stats, nil
}
