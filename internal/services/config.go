package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type ConfigService interface {
	GetActive(ctx context.Context) (map[string]interface{}, error)
	Set(ctx context.Context, key, value, configType, description string) error
}

type configService struct {
	db         *gorm.DB
	log        *logger.Logger
	configRepo repos.SystemConfigRepo
}

func NewConfigService(db *gorm.DB, baseLog *logger.Logger, configRepo repos.SystemConfigRepo) ConfigService {
	return &configService{
		db:         db,
		log:        baseLog.With("service", "ConfigService"),
		configRepo: configRepo,
	}
}

// GetActive returns all active entries coerced to their tagged type. A store
// with zero active entries yields the fixed default map display settings
// instead of an empty mapping. A value that fails coercion fails the whole
// read; there is no per-key fallback.
func (s *configService) GetActive(ctx context.Context) (map[string]interface{}, error) {
	entries, err := s.configRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if len(entries) == 0 {
		return defaultMapConfig(), nil
	}
	result := make(map[string]interface{}, len(entries))
	for _, entry := range entries {
		value, err := coerceConfigValue(entry)
		if err != nil {
			s.log.Error("Config value coercion failed", "error", err, "config_key", entry.ConfigKey)
			return nil, err
		}
		result[entry.ConfigKey] = value
	}
	return result, nil
}

func (s *configService) Set(ctx context.Context, key, value, configType, description string) error {
	if key == "" {
		return fmt.Errorf("config_key is required: %w", ErrValidation)
	}
	if !types.ValidConfigType(configType) {
		return fmt.Errorf("unknown config_type %q: %w", configType, ErrValidation)
	}

	existing, err := s.configRepo.GetByKey(ctx, nil, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load config entry: %w", err)
		}
		_, err = s.configRepo.Create(ctx, nil, &types.SystemConfig{
			ID:          uuid.New(),
			ConfigKey:   key,
			ConfigValue: value,
			ConfigType:  configType,
			Description: description,
			IsActive:    true,
		})
		if err != nil {
			return fmt.Errorf("create config entry: %w", err)
		}
		return nil
	}

	updates := map[string]interface{}{
		"config_value": value,
		"config_type":  configType,
	}
	// Description is only overwritten when provided.
	if description != "" {
		updates["description"] = description
	}
	if err := s.configRepo.Update(ctx, nil, existing.ConfigKey, updates); err != nil {
		return fmt.Errorf("update config entry: %w", err)
	}
	return nil
}

func coerceConfigValue(entry *types.SystemConfig) (interface{}, error) {
	switch entry.ConfigType {
	case types.ConfigTypeInteger:
		i, err := strconv.Atoi(entry.ConfigValue)
		if err != nil {
			return nil, fmt.Errorf("config %q is not an integer: %w", entry.ConfigKey, err)
		}
		return i, nil
	case types.ConfigTypeFloat:
		f, err := strconv.ParseFloat(entry.ConfigValue, 64)
		if err != nil {
			return nil, fmt.Errorf("config %q is not a float: %w", entry.ConfigKey, err)
		}
		return f, nil
	case types.ConfigTypeBoolean:
		switch strings.ToLower(entry.ConfigValue) {
		case "true", "1", "yes", "on":
			return true, nil
		}
		return false, nil
	case types.ConfigTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(entry.ConfigValue), &v); err != nil {
			return nil, fmt.Errorf("config %q is not valid json: %w", entry.ConfigKey, err)
		}
		return v, nil
	default:
		return entry.ConfigValue, nil
	}
}

// defaultMapConfig is the presentation fallback served when nothing is
// configured. Center coordinates default to Stockholm.
func defaultMapConfig() map[string]interface{} {
	return map[string]interface{}{
		"default_zoom":     10,
		"center_lat":       59.3293,
		"center_lng":       18.0686,
		"heat_center_icon": "power-plant",
		"demand_site_icon": "building",
		"route_color":      "#ff4444",
		"route_width":      3,
		"max_zoom":         18,
		"min_zoom":         5,
	}
}
