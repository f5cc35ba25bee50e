package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type HeatCenterService interface {
	List(ctx context.Context, activeOnly bool, skip, limit int) ([]*types.HeatCenter, error)
	Create(ctx context.Context, req types.HeatCenterCreate) (*types.HeatCenter, error)
	Get(ctx context.Context, id uuid.UUID) (*types.HeatCenter, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]json.RawMessage) (*types.HeatCenter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type heatCenterService struct {
	db             *gorm.DB
	log            *logger.Logger
	heatCenterRepo repos.HeatCenterRepo
	routeRepo      repos.RouteRepo
}

func NewHeatCenterService(
	db *gorm.DB,
	baseLog *logger.Logger,
	heatCenterRepo repos.HeatCenterRepo,
	routeRepo repos.RouteRepo,
) HeatCenterService {
	return &heatCenterService{
		db:             db,
		log:            baseLog.With("service", "HeatCenterService"),
		heatCenterRepo: heatCenterRepo,
		routeRepo:      routeRepo,
	}
}

func (s *heatCenterService) List(ctx context.Context, activeOnly bool, skip, limit int) ([]*types.HeatCenter, error) {
	skip, limit, err := normalizeListWindow(skip, limit)
	if err != nil {
		return nil, err
	}
	return s.heatCenterRepo.List(ctx, nil, activeOnly, skip, limit)
}

func (s *heatCenterService) Create(ctx context.Context, req types.HeatCenterCreate) (*types.HeatCenter, error) {
	center := &types.HeatCenter{
		ID:                uuid.New(),
		Name:              req.Name,
		LocationLat:       *req.LocationLat,
		LocationLng:       *req.LocationLng,
		Address:           req.Address,
		MaxCapacityMW:     *req.MaxCapacityMW,
		CurrentOutputMW:   0,
		EfficiencyPercent: 85.0,
		FuelType:          req.FuelType,
		IsActive:          true,
		CommissioningDate: req.CommissioningDate,
		LastMaintenance:   req.LastMaintenance,
		Description:       req.Description,
	}
	if req.CurrentOutputMW != nil {
		center.CurrentOutputMW = *req.CurrentOutputMW
	}
	if req.EfficiencyPercent != nil {
		center.EfficiencyPercent = *req.EfficiencyPercent
	}
	if req.IsActive != nil {
		center.IsActive = *req.IsActive
	}
	created, err := s.heatCenterRepo.Create(ctx, nil, center)
	if err != nil {
		s.log.Error("Create heat center failed", "error", err)
		return nil, fmt.Errorf("create heat center: %w", err)
	}
	return created, nil
}

func (s *heatCenterService) Get(ctx context.Context, id uuid.UUID) (*types.HeatCenter, error) {
	center, err := s.heatCenterRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("heat center %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load heat center: %w", err)
	}
	return center, nil
}

func (s *heatCenterService) Update(ctx context.Context, id uuid.UUID, fields map[string]json.RawMessage) (*types.HeatCenter, error) {
	center, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := parseHeatCenterUpdate(fields)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return center, nil
	}
	updated, err := s.heatCenterRepo.Update(ctx, nil, id, updates)
	if err != nil {
		s.log.Error("Update heat center failed", "error", err, "heat_center_id", id)
		return nil, fmt.Errorf("update heat center: %w", err)
	}
	return updated, nil
}

func (s *heatCenterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.heatCenterRepo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("heat center %s: %w", id, ErrNotFound)
			}
			return fmt.Errorf("load heat center: %w", err)
		}
		count, err := s.routeRepo.CountByHeatCenter(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count routes: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("cannot delete heat center with active routes: %w", ErrConflict)
		}
		return s.heatCenterRepo.Delete(ctx, tx, id)
	})
}

func parseHeatCenterUpdate(fields map[string]json.RawMessage) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(fields))
	for key, raw := range fields {
		var (
			val interface{}
			err error
		)
		switch key {
		case "name":
			val, err = decodeRequiredString(key, raw)
		case "location_lat", "location_lng", "max_capacity_mw", "current_output_mw", "efficiency_percent":
			val, err = decodeFloat(key, raw)
		case "address", "fuel_type", "description":
			val, err = decodeString(key, raw)
		case "is_active":
			val, err = decodeBool(key, raw)
		case "commissioning_date", "last_maintenance":
			val, err = decodeNullableTime(key, raw)
		default:
			// Unknown and server-managed fields are ignored.
			continue
		}
		if err != nil {
			return nil, err
		}
		updates[key] = val
	}
	return updates, nil
}
