package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
)

func generateTestReport(t *testing.T, router *gin.Engine, eventID, reportType string) domain.Report {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/events/"+eventID+"/reports", map[string]interface{}{
		"report_type": reportType,
		"created_by":  "admin-1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var report domain.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return report
}

func TestReportHandler_Generate(t *testing.T) {
	router := setupRouter()
	event := createTestEvent(t, router)

	report := generateTestReport(t, router, event.ID, "sales")

	if report.ID == "" {
		t.Error("Expected non-empty report ID")
	}
	if report.EventID != event.ID {
		t.Errorf("Expected event ID %s, got %s", event.ID, report.EventID)
	}
	if report.ReportType != domain.ReportTypeSales {
		t.Errorf("Expected report type sales, got %s", report.ReportType)
	}
	if report.Data.Event == nil || report.Data.Event.ID != event.ID {
		t.Error("Expected embedded event snapshot")
	}
	if report.Data.Stats == nil {
		t.Error("Expected embedded stats snapshot")
	}
}

func TestReportHandler_Generate_MissingFields(t *testing.T) {
	router := setupRouter()
	event := createTestEvent(t, router)

	w := doRequest(router, http.MethodPost, "/events/"+event.ID+"/reports", map[string]interface{}{
		"report_type": "sales",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "reportType and createdBy are required" {
		t.Errorf("Unexpected error message: %s", resp["error"])
	}
}

func TestReportHandler_Generate_UnknownType(t *testing.T) {
	router := setupRouter()
	event := createTestEvent(t, router)

	w := doRequest(router, http.MethodPost, "/events/"+event.ID+"/reports", map[string]interface{}{
		"report_type": "quarterly",
		"created_by":  "admin-1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestReportHandler_Generate_MissingEvent(t *testing.T) {
	router := setupRouter()

	// Generation succeeds for an unknown event; the snapshot is just empty
	report := generateTestReport(t, router, "non-existent", "attendance")

	if report.Data.Event != nil {
		t.Error("Expected nil embedded event")
	}
	if report.Data.Stats != nil {
		t.Error("Expected nil embedded stats")
	}
	if report.Period.StartDate.Unix() != 0 {
		t.Errorf("Expected epoch period start, got %v", report.Period.StartDate)
	}
}

func TestReportHandler_GetByID(t *testing.T) {
	router := setupRouter()
	event := createTestEvent(t, router)
	report := generateTestReport(t, router, event.ID, "revenue")

	w := doRequest(router, http.MethodGet, "/events/reports/"+report.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var found domain.Report
	json.Unmarshal(w.Body.Bytes(), &found)
	if found.ID != report.ID {
		t.Errorf("Expected report ID %s, got %s", report.ID, found.ID)
	}
}

func TestReportHandler_GetByID_NotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/events/reports/non-existent", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Report not found" {
		t.Errorf("Unexpected error message: %s", resp["error"])
	}
}

func TestReportHandler_ListByEvent(t *testing.T) {
	router := setupRouter()
	event := createTestEvent(t, router)

	first := generateTestReport(t, router, event.ID, "sales")
	second := generateTestReport(t, router, event.ID, "attendance")

	w := doRequest(router, http.MethodGet, "/events/"+event.ID+"/reports", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var reports []domain.Report
	json.Unmarshal(w.Body.Bytes(), &reports)
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	if reports[0].ID != first.ID || reports[1].ID != second.ID {
		t.Error("Expected reports in creation order")
	}
}

func TestReportHandler_ListByEvent_Empty(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/events/no-reports/reports", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var reports []domain.Report
	json.Unmarshal(w.Body.Bytes(), &reports)
	if len(reports) != 0 {
		t.Errorf("Expected empty list, got %d reports", len(reports))
	}
}
