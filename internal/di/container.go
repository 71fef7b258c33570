package di

import (
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/handler"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/repository"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/service"
)

// Container holds all dependencies for the event operations service
type Container struct {
	// Repositories
	EventRepo     repository.EventRepository
	StatsRepo     repository.StatsRepository
	AnalyticsRepo repository.AnalyticsRepository
	ReportRepo    repository.ReportRepository

	// Services
	EventService     service.EventService
	StatsService     service.StatsService
	AnalyticsService service.AnalyticsService
	ReportService    service.ReportService

	// Handlers
	HealthHandler *handler.HealthHandler
	EventHandler  *handler.EventHandler
	StatsHandler  *handler.StatsHandler
	ReportHandler *handler.ReportHandler
}

// NewContainer creates a new dependency injection container. The store is
// constructed here, once per process, and handed to the services by
// reference; there is no process-wide mutable state.
func NewContainer() *Container {
	c := &Container{}

	// Initialize repositories
	c.EventRepo = repository.NewMemoryEventRepository()
	c.StatsRepo = repository.NewMemoryStatsRepository()
	c.AnalyticsRepo = repository.NewMemoryAnalyticsRepository()
	c.ReportRepo = repository.NewMemoryReportRepository()

	// Initialize services
	c.StatsService = service.NewStatsService(c.EventRepo, c.StatsRepo)
	c.EventService = service.NewEventService(c.EventRepo, c.StatsRepo, c.StatsService)
	c.AnalyticsService = service.NewAnalyticsService(c.AnalyticsRepo)
	c.ReportService = service.NewReportService(c.EventRepo, c.StatsRepo, c.AnalyticsService, c.ReportRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler()
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.StatsHandler = handler.NewStatsHandler(c.StatsService, c.AnalyticsService)
	c.ReportHandler = handler.NewReportHandler(c.ReportService)

	return c
}
