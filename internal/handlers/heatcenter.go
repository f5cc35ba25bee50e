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

type HeatCenterHandler struct {
	log               *logger.Logger
	heatCenterService services.HeatCenterService
}

func NewHeatCenterHandler(log *logger.Logger, heatCenterService services.HeatCenterService) *HeatCenterHandler {
	return &HeatCenterHandler{
		log:               log.With("handler", "HeatCenterHandler"),
		heatCenterService: heatCenterService,
	}
}

func (h *HeatCenterHandler) List(c *gin.Context) {
	skip, limit, err := listWindow(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	centers, err := h.heatCenterService.List(c.Request.Context(), boolQuery(c, "active_only"), skip, limit)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, centers)
}

func (h *HeatCenterHandler) Create(c *gin.Context) {
	var req types.HeatCenterCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_failed", fmt.Errorf("invalid heat center payload: %w", err))
		return
	}
	center, err := h.heatCenterService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondCreated(c, center)
}

func (h *HeatCenterHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	center, err := h.heatCenterService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, center)
}

func (h *HeatCenterHandler) Update(c *gin.Context) {
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
	center, err := h.heatCenterService.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, center)
}

func (h *HeatCenterHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if err := h.heatCenterService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, gin.H{"message": "Heat center deleted successfully"})
}
