package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

func newTestReport(eventID string, reportType domain.ReportType) *domain.Report {
	now := time.Now().UTC()
	return &domain.Report{
		ID:          uuid.New().String(),
		EventID:     eventID,
		ReportType:  reportType,
		GeneratedAt: now,
		Period:      domain.ReportPeriod{StartDate: now.Add(-time.Hour), EndDate: now},
		CreatedBy:   "admin-1",
	}
}

func TestMemoryReportRepository_Create_GetByID(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	report := newTestReport("event-1", domain.ReportTypeSales)
	if err := repo.Create(ctx, report); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	found, err := repo.GetByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if found.ReportType != domain.ReportTypeSales {
		t.Errorf("Expected report type sales, got %s", found.ReportType)
	}
}

func TestMemoryReportRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "non-existent"); err == nil {
		t.Error("Expected error for non-existent report")
	}
}

func TestMemoryReportRepository_GetByEventID_CreationOrder(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	first := newTestReport("event-1", domain.ReportTypeSales)
	second := newTestReport("event-1", domain.ReportTypeAttendance)
	other := newTestReport("event-2", domain.ReportTypeRevenue)

	repo.Create(ctx, first)
	repo.Create(ctx, second)
	repo.Create(ctx, other)

	reports, err := repo.GetByEventID(ctx, "event-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	if reports[0].ID != first.ID || reports[1].ID != second.ID {
		t.Error("Expected reports in creation order")
	}
}

func TestMemoryReportRepository_GetByEventID_Empty(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	reports, err := repo.GetByEventID(ctx, "unknown-event")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(reports) != 0 {
		t.Errorf("Expected empty slice, got %d reports", len(reports))
	}
}

func TestMemoryReportRepository_List(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()

	first := newTestReport("event-1", domain.ReportTypeSales)
	second := newTestReport("event-2", domain.ReportTypePerformance)

	repo.Create(ctx, first)
	repo.Create(ctx, second)

	reports, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	if reports[0].ID != first.ID || reports[1].ID != second.ID {
		t.Error("Expected reports in creation order")
	}
}
