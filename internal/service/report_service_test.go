package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/dto"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/repository"
)

type reportFixture struct {
	events  EventService
	reports ReportService
}

func newReportFixture() *reportFixture {
	eventRepo := repository.NewMemoryEventRepository()
	statsRepo := repository.NewMemoryStatsRepository()
	analyticsRepo := repository.NewMemoryAnalyticsRepository()
	reportRepo := repository.NewMemoryReportRepository()

	stats := NewStatsService(eventRepo, statsRepo)
	analytics := NewAnalyticsService(analyticsRepo)
	return &reportFixture{
		events:  NewEventService(eventRepo, statsRepo, stats),
		reports: NewReportService(eventRepo, statsRepo, analytics, reportRepo),
	}
}

func (f *reportFixture) createEvent(t *testing.T) *domain.Event {
	t.Helper()
	event, err := f.events.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Name:          "Art Expo",
		Description:   "Modern art exhibition",
		EventDate:     time.Now().Add(24 * time.Hour).UTC(),
		Location:      "Gallery One",
		TotalCapacity: 200,
		AdminID:       "admin-1",
	})
	require.NoError(t, err)
	return event
}

func TestReportService_GenerateReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	event := f.createEvent(t)

	report, err := f.reports.GenerateReport(ctx, event.ID, domain.ReportTypeSales, "admin-1")
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, event.ID, report.EventID)
	assert.Equal(t, domain.ReportTypeSales, report.ReportType)
	assert.Equal(t, "admin-1", report.CreatedBy)
	assert.Equal(t, event.CreatedAt, report.Period.StartDate)
	assert.False(t, report.GeneratedAt.IsZero())

	require.NotNil(t, report.Data.Event)
	require.NotNil(t, report.Data.Stats)
	assert.Equal(t, event.ID, report.Data.Event.ID)
	assert.Equal(t, 100, report.Data.Analytics.ConversionFunnel.Completed)
}

func TestReportService_GenerateReport_SnapshotIsCurrent(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	event := f.createEvent(t)

	_, err := f.events.RecordTicketSale(ctx, event.ID, "40")
	require.NoError(t, err)
	_, err = f.events.RecordTicketSale(ctx, event.ID, "60")
	require.NoError(t, err)

	report, err := f.reports.GenerateReport(ctx, event.ID, domain.ReportTypeRevenue, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Data.Event.TicketsSold)
	assert.Equal(t, "100", report.Data.Event.Revenue)
	assert.Equal(t, 2, report.Data.Stats.TicketsSold)
	assert.Equal(t, "50.00", report.Data.Stats.AverageTicketPrice)
}

func TestReportService_GenerateReport_MissingEvent(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	// Generation always succeeds; a missing event yields nil embedded data
	report, err := f.reports.GenerateReport(ctx, "missing-event", domain.ReportTypeAttendance, "admin-1")
	require.NoError(t, err)

	assert.Nil(t, report.Data.Event)
	assert.Nil(t, report.Data.Stats)
	assert.Equal(t, time.Unix(0, 0).UTC(), report.Period.StartDate)
	assert.Equal(t, 1000, report.Data.Analytics.ConversionFunnel.PageViews)
}

func TestReportService_GetReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	event := f.createEvent(t)
	generated, err := f.reports.GenerateReport(ctx, event.ID, domain.ReportTypePerformance, "admin-1")
	require.NoError(t, err)

	found, err := f.reports.GetReport(ctx, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, generated.ID, found.ID)
	assert.Equal(t, domain.ReportTypePerformance, found.ReportType)
}

func TestReportService_GetReport_NotFound(t *testing.T) {
	f := newReportFixture()

	_, err := f.reports.GetReport(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrReportNotFound))
}

func TestReportService_ListEventReports(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	event := f.createEvent(t)

	first, err := f.reports.GenerateReport(ctx, event.ID, domain.ReportTypeSales, "admin-1")
	require.NoError(t, err)
	second, err := f.reports.GenerateReport(ctx, event.ID, domain.ReportTypeAttendance, "admin-1")
	require.NoError(t, err)

	reports, err := f.reports.ListEventReports(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, first.ID, reports[0].ID)
	assert.Equal(t, second.ID, reports[1].ID)
}

func TestReportService_ListEventReports_Empty(t *testing.T) {
	f := newReportFixture()

	reports, err := f.reports.ListEventReports(context.Background(), "no-reports")
	require.NoError(t, err)
	assert.Empty(t, reports)
}
