package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type ConfigHandler struct {
	log           *logger.Logger
	configService services.ConfigService
}

func NewConfigHandler(log *logger.Logger, configService services.ConfigService) *ConfigHandler {
	return &ConfigHandler{
		log:           log.With("handler", "ConfigHandler"),
		configService: configService,
	}
}

func (h *ConfigHandler) GetMapConfig(c *gin.Context) {
	cfg, err := h.configService.GetActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, gin.H{"map_config": cfg})
}

func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	key := c.Query("config_key")
	value := c.Query("config_value")
	configType := c.DefaultQuery("config_type", types.ConfigTypeString)
	description := c.Query("description")

	if err := h.configService.Set(c.Request.Context(), key, value, configType, description); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, gin.H{"message": fmt.Sprintf("Configuration '%s' updated successfully", key)})
}
