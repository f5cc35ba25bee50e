package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type DemandSiteHandler struct {
	log               *logger.Logger
	demandSiteService services.DemandSiteService
}

func NewDemandSiteHandler(log *logger.Logger, demandSiteService services.DemandSiteService) *DemandSiteHandler {
	return &DemandSiteHandler{
		log:               log.With("handler", "DemandSiteHandler"),
		demandSiteService: demandSiteService,
	}
}

func (h *DemandSiteHandler) List(c *gin.Context) {
	skip, limit, err := listWindow(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	sites, err := h.demandSiteService.List(
		c.Request.Context(),
		boolQuery(c, "connected_only"),
		c.Query("site_type"),
		skip, limit,
	)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, sites)
}

func (h *DemandSiteHandler) Create(c *gin.Context) {
	var req types.DemandSiteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_failed", fmt.Errorf("invalid demand site payload: %w", err))
		return
	}
	site, err := h.demandSiteService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondCreated(c, site)
}

func (h *DemandSiteHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	site, err := h.demandSiteService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, site)
}

func (h *DemandSiteHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_failed", fmt.Errorf("invalid update payload: %w", err))
		return
	}
	site, err := h.demandSiteService.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, site)
}

func (h *DemandSiteHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if err := h.demandSiteService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "Demand site deleted successfully"})
}
