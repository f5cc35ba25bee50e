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

type DemandSiteService interface {
	List(ctx context.Context, connectedOnly bool, siteType string, skip, limit int) ([]*types.DemandSite, error)
	Create(ctx context.Context, req types.DemandSiteCreate) (*types.DemandSite, error)
	Get(ctx context.Context, id uuid.UUID) (*types.DemandSite, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]json.RawMessage) (*types.DemandSite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type demandSiteService struct {
	db             *gorm.DB
	log            *logger.Logger
	demandSiteRepo repos.DemandSiteRepo
	routeRepo      repos.RouteRepo
}

func NewDemandSiteService(
	db *gorm.DB,
	baseLog *logger.Logger,
	demandSiteRepo repos.DemandSiteRepo,
	routeRepo repos.RouteRepo,
) DemandSiteService {
	return &demandSiteService{
		db:             db,
		log:            baseLog.With("service", "DemandSiteService"),
		demandSiteRepo: demandSiteRepo,
		routeRepo:      routeRepo,
	}
}

func (s *demandSiteService) List(ctx context.Context, connectedOnly bool, siteType string, skip, limit int) ([]*types.DemandSite, error) {
	skip, limit, err := normalizeListWindow(skip, limit)
	if err != nil {
		return nil, err
	}
	return s.demandSiteRepo.List(ctx, nil, connectedOnly, siteType, skip, limit)
}

func (s *demandSiteService) Create(ctx context.Context, req types.DemandSiteCreate) (*types.DemandSite, error) {
	site := &types.DemandSite{
		ID:                   uuid.New(),
		Name:                 req.Name,
		LocationLat:          *req.LocationLat,
		LocationLng:          *req.LocationLng,
		Address:              req.Address,
		SiteType:             req.SiteType,
		PeakDemandMW:         *req.PeakDemandMW,
		CurrentDemandMW:      0,
		AnnualConsumptionMWH: req.AnnualConsumptionMWH,
		IsConnected:          false,
		ConnectionDate:       req.ConnectionDate,
		PriorityLevel:        1,
		FloorAreaSqm:         req.FloorAreaSqm,
		BuildingAgeYears:     req.BuildingAgeYears,
		InsulationRating:     req.InsulationRating,
		Description:          req.Description,
	}
	if req.CurrentDemandMW != nil {
		site.CurrentDemandMW = *req.CurrentDemandMW
	}
	if req.IsConnected != nil {
		site.IsConnected = *req.IsConnected
	}
	if req.PriorityLevel != nil {
		site.PriorityLevel = *req.PriorityLevel
	}
	created, err := s.demandSiteRepo.Create(ctx, nil, site)
	if err != nil {
		s.log.Error("Create demand site failed", "error", err)
		return nil, fmt.Errorf("create demand site: %w", err)
	}
	return created, nil
}

func (s *demandSiteService) Get(ctx context.Context, id uuid.UUID) (*types.DemandSite, error) {
	site, err := s.demandSiteRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("demand site %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load demand site: %w", err)
	}
	return site, nil
}

func (s *demandSiteService) Update(ctx context.Context, id uuid.UUID, fields map[string]json.RawMessage) (*types.DemandSite, error) {
	site, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := parseDemandSiteUpdate(fields)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return site, nil
	}
	updated, err := s.demandSiteRepo.Update(ctx, nil, id, updates)
	if err != nil {
		s.log.Error("Update demand site failed", "error", err, "demand_site_id", id)
		return nil, fmt.Errorf("update demand site: %w", err)
	}
	return updated, nil
}

func (s *demandSiteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.demandSiteRepo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("demand site %s: %w", id, ErrNotFound)
			}
			return fmt.Errorf("load demand site: %w", err)
		}
		count, err := s.routeRepo.CountByDemandSite(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count routes: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("cannot delete demand site with active routes: %w", ErrConflict)
		}
		return s.demandSiteRepo.Delete(ctx, tx, id)
	})
}

func parseDemandSiteUpdate(fields map[string]json.RawMessage) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(fields))
	for key, raw := range fields {
		var (
			val interface{}
			err error
		)
		switch key {
		case "name":
			val, err = decodeRequiredString(key, raw)
		case "location_lat", "location_lng", "peak_demand_mw", "current_demand_mw":
			val, err = decodeFloat(key, raw)
		case "annual_consumption_mwh", "floor_area_sqm":
			val, err = decodeNullableFloat(key, raw)
		case "address", "site_type", "insulation_rating", "description":
			val, err = decodeString(key, raw)
		case "is_connected":
			val, err = decodeBool(key, raw)
		case "connection_date":
			val, err = decodeNullableTime(key, raw)
		case "priority_level":
			val, err = decodeInt(key, raw)
		case "building_age_years":
			val, err = decodeNullableInt(key, raw)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		updates[key] = val
	}
	return updates, nil
}
