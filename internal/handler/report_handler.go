package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/dto"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/service"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Generate handles POST /events/:eventId/reports
func (h *ReportHandler) Generate(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "reportType and createdBy are required")
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), c.Param("eventId"), domain.ReportType(req.ReportType), req.CreatedBy)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, report)
}

// GetByID handles GET /events/reports/:reportId
func (h *ReportHandler) GetByID(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context(), c.Param("reportId"))
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, report)
}

// ListByEvent handles GET /events/:eventId/reports
func (h *ReportHandler) ListByEvent(c *gin.Context) {
	reports, err := h.reportService.ListEventReports(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, reports)
}
