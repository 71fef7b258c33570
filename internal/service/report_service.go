package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/metrics"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/repository"
)

// reportService implements ReportService
type reportService struct {
	eventRepo  repository.EventRepository
	statsRepo  repository.StatsRepository
	analytics  AnalyticsService
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(eventRepo repository.EventRepository, statsRepo repository.StatsRepository, analytics AnalyticsService, reportRepo repository.ReportRepository) ReportService {
	return &reportService{
		eventRepo:  eventRepo,
		statsRepo:  statsRepo,
		analytics:  analytics,
		reportRepo: reportRepo,
	}
}

// GenerateReport assembles a snapshot of the event, its stats and selected
// analytics fields, and appends it to the report collection. Generation
// always succeeds: a missing event yields a report with nil embedded data
// and a period starting at the Unix epoch.
func (s *reportService) GenerateReport(ctx context.Context, eventID string, reportType domain.ReportType, createdBy string) (*domain.Report, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return nil, err
	}

	stats, err := s.statsRepo.GetByEventID(ctx, eventID)
	if err != nil && !errors.Is(err, domain.ErrStatsNotFound) {
		return nil, err
	}

	analytics, err := s.analytics.GetAnalytics(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startDate := time.Unix(0, 0).UTC()
	if event != nil {
		startDate = event.CreatedAt
	}

	report := &domain.Report{
		ID:          uuid.New().String(),
		EventID:     eventID,
		ReportType:  reportType,
		GeneratedAt: now,
		Period: domain.ReportPeriod{
			StartDate: startDate,
			EndDate:   now,
		},
		Data: domain.ReportData{
			Event: event,
			Stats: stats,
			Analytics: domain.ReportAnalytics{
				UserAcquisitionRate: analytics.UserAcquisitionRate,
				RepeatCustomerRate:  analytics.RepeatCustomerRate,
				ConversionFunnel:    analytics.ConversionFunnel,
			},
		},
		CreatedBy: createdBy,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	metrics.ReportsGenerated.Inc(ctx, attribute.String("report_type", string(reportType)))

	return report, nil
}

// GetReport retrieves a report by ID
func (s *reportService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

// ListEventReports retrieves all reports for an event in creation order
func (s *reportService) ListEventReports(ctx context.Context, eventID string) ([]*domain.Report, error) {
	return s.reportRepo.GetByEventID(ctx, eventID)
}
