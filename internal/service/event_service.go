package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/dto"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/metrics"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/repository"
)

// eventService implements EventService.
//
// Mutating operations run under a single mutex so that an event and its
// derived stats are always observed as one atomic unit; the stats record
// must never reflect a partially updated event.
type eventService struct {
	mu           sync.Mutex
	eventRepo    repository.EventRepository
	statsRepo    repository.StatsRepository
	statsService StatsService
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, statsRepo repository.StatsRepository, statsService StatsService) EventService {
	return &eventService{
		eventRepo:    eventRepo,
		statsRepo:    statsRepo,
		statsService: statsService,
	}
}

// CreateEvent creates a new draft event and its paired zeroed stats record
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := domain.NewEvent(req.Name, req.Description, req.EventDate, req.Location, req.TotalCapacity, req.AdminID)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	if err := s.statsRepo.Create(ctx, domain.NewEventStats(event.ID)); err != nil {
		return nil, err
	}

	metrics.EventsCreated.Inc(ctx)

	return event, nil
}

// GetEvent retrieves an event by ID
func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// ListAdminEvents retrieves all events owned by an admin, in insertion order
func (s *eventService) ListAdminEvents(ctx context.Context, adminID string) ([]*domain.Event, error) {
	return s.eventRepo.GetByAdminID(ctx, adminID)
}

// UpdateEvent merges the supplied patch fields into an event. Unset fields
// keep their prior values; identifier, status and counters are not
// patchable. Stats are not recomputed here: only ticket sales trigger a
// recompute.
func (s *eventService) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.TotalCapacity != nil {
		event.TotalCapacity = *req.TotalCapacity
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	metrics.EventsUpdated.Inc(ctx)

	return event, nil
}

// UpdateEventStatus sets the event status. Transitions are deliberately
// permissive: any of the known statuses may follow any other.
func (s *eventService) UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	if !domain.IsValidEventStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Status = status
	event.UpdatedAt = time.Now().UTC()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	metrics.StatusTransitions.Inc(ctx, attribute.String("status", string(status)))

	return event, nil
}

// RecordTicketSale sells exactly one ticket regardless of the amount
// magnitude, adds the amount to the event revenue and synchronously
// recomputes the stats record. Sales beyond capacity are not rejected.
func (s *eventService) RecordTicketSale(ctx context.Context, id string, amount string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	saleAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}

	revenue, err := decimal.NewFromString(event.Revenue)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}

	event.TicketsSold++
	event.Revenue = revenue.Add(saleAmount).String()
	event.UpdatedAt = time.Now().UTC()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	if _, err := s.statsService.Recompute(ctx, id); err != nil {
		return nil, err
	}

	metrics.TicketSalesTotal.Inc(ctx)

	return event, nil
}
