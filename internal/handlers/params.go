package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
)

func idParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", c.Param("id"), services.ErrValidation)
	}
	return id, nil
}

func intQuery(c *gin.Context, key string, defaultVal int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer: %w", key, services.ErrValidation)
	}
	return v, nil
}

func boolQuery(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery(key, "false"))
	return v
}

func listWindow(c *gin.Context) (skip, limit int, err error) {
	skip, err = intQuery(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = intQuery(c, "limit", services.DefaultListLimit)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}
