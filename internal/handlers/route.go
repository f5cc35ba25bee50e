package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type RouteHandler struct {
	log          *logger.Logger
	routeService services.RouteService
}

func NewRouteHandler(log *logger.Logger, routeService services.RouteService) *RouteHandler {
	return &RouteHandler{
		log:          log.With("handler", "RouteHandler"),
		routeService: routeService,
	}
}

func (h *RouteHandler) List(c *gin.Context) {
	skip, limit, err := listWindow(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	var filter repos.RouteFilter
	if raw := c.Query("status"); raw != "" {
		status := types.RouteStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("heat_center_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondServiceError(c, h.log, fmt.Errorf("invalid heat_center_id %q: %w", raw, services.ErrValidation))
			return
		}
		filter.HeatCenterID = &id
	}
	if raw := c.Query("demand_site_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondServiceError(c, h.log, fmt.Errorf("invalid demand_site_id %q: %w", raw, services.ErrValidation))
			return
		}
		filter.DemandSiteID = &id
	}

	routes, err := h.routeService.List(c.Request.Context(), filter, skip, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, routes)
}

func (h *RouteHandler) Create(c *gin.Context) {
	var req types.RouteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_failed", fmt.Errorf("invalid route payload: %w", err))
		return
	}
	route, err := h.routeService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondCreated(c, route)
}

func (h *RouteHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	route, err := h.routeService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, route)
}

func (h *RouteHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if err := h.routeService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "Route deleted successfully"})
}
