package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/domain"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/service"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/response"
)

// StatsHandler handles statistics and analytics HTTP requests
type StatsHandler struct {
	statsService     service.StatsService
	analyticsService service.AnalyticsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService, analyticsService service.AnalyticsService) *StatsHandler {
	return &StatsHandler{
		statsService:     statsService,
		analyticsService: analyticsService,
	}
}

// GetStats handles GET /events/:eventId/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			response.NotFound(c, "Stats not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, stats)
}

// GetAnalytics handles GET /events/:eventId/analytics. The snapshot is
// lazily initialized, so this succeeds even for unknown event IDs.
func (h *StatsHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.GetAnalytics(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		if errors.Is(err, domain.ErrAnalyticsNotFound) {
			response.NotFound(c, "Analytics not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, analytics)
}
