package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
)

type AnalyticsHandler struct {
	log              *logger.Logger
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(log *logger.Logger, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log.With("handler", "AnalyticsHandler"),
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsService.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, overview)
}

func (h *AnalyticsHandler) HeatCenter(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	analytics, err := h.analyticsService.HeatCenterAnalytics(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, analytics)
}

func (h *AnalyticsHandler) DemandSite(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	analytics, err := h.analyticsService.DemandSiteAnalytics(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, analytics)
}
