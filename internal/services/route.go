package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type RouteService interface {
	List(ctx context.Context, filter repos.RouteFilter, skip, limit int) ([]*types.Route, error)
	Create(ctx context.Context, req types.RouteCreate) (*types.Route, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Route, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeService struct {
	db             *gorm.DB
	log            *logger.Logger
	routeRepo      repos.RouteRepo
	heatCenterRepo repos.HeatCenterRepo
	demandSiteRepo repos.DemandSiteRepo
}

func NewRouteService(
	db *gorm.DB,
	baseLog *logger.Logger,
	routeRepo repos.RouteRepo,
	heatCenterRepo repos.HeatCenterRepo,
	demandSiteRepo repos.DemandSiteRepo,
) RouteService {
	return &routeService{
		db:             db,
		log:            baseLog.With("service", "RouteService"),
		routeRepo:      routeRepo,
		heatCenterRepo: heatCenterRepo,
		demandSiteRepo: demandSiteRepo,
	}
}

func (s *routeService) List(ctx context.Context, filter repos.RouteFilter, skip, limit int) ([]*types.Route, error) {
	skip, limit, err := normalizeListWindow(skip, limit)
	if err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("unknown route status %q: %w", *filter.Status, ErrValidation)
	}
	return s.routeRepo.List(ctx, nil, filter, skip, limit)
}

func (s *routeService) Create(ctx context.Context, req types.RouteCreate) (*types.Route, error) {
	status := types.RouteStatusActive
	if req.Status != nil {
		status = *req.Status
		if !status.Valid() {
			return nil, fmt.Errorf("unknown route status %q: %w", status, ErrValidation)
		}
	}

	route := &types.Route{
		ID:                    uuid.New(),
		HeatCenterID:          req.HeatCenterID,
		DemandSiteID:          req.DemandSiteID,
		DistanceKM:            *req.DistanceKM,
		PipeDiameterMM:        req.PipeDiameterMM,
		MaxFlowCapacityMW:     *req.MaxFlowCapacityMW,
		CurrentFlowMW:         0,
		SupplyTempCelsius:     80.0,
		ReturnTempCelsius:     40.0,
		PressureBar:           16.0,
		HeatLossPercent:       2.0,
		InstallationYear:      req.InstallationYear,
		PipeMaterial:          req.PipeMaterial,
		InsulationType:        req.InsulationType,
		Status:                status,
		IsBidirectional:       false,
		MaintenanceDue:        req.MaintenanceDue,
		ConstructionCost:      req.ConstructionCost,
		AnnualMaintenanceCost: req.AnnualMaintenanceCost,
	}
	if req.CurrentFlowMW != nil {
		route.CurrentFlowMW = *req.CurrentFlowMW
	}
	if req.SupplyTempCelsius != nil {
		route.SupplyTempCelsius = *req.SupplyTempCelsius
	}
	if req.ReturnTempCelsius != nil {
		route.ReturnTempCelsius = *req.ReturnTempCelsius
	}
	if req.PressureBar != nil {
		route.PressureBar = *req.PressureBar
	}
	if req.HeatLossPercent != nil {
		route.HeatLossPercent = *req.HeatLossPercent
	}
	if req.IsBidirectional != nil {
		route.IsBidirectional = *req.IsBidirectional
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.heatCenterRepo.GetByID(ctx, tx, req.HeatCenterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("heat center %s: %w", req.HeatCenterID, ErrNotFound)
			}
			return fmt.Errorf("load heat center: %w", err)
		}
		if _, err := s.demandSiteRepo.GetByID(ctx, tx, req.DemandSiteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("demand site %s: %w", req.DemandSiteID, ErrNotFound)
			}
			return fmt.Errorf("load demand site: %w", err)
		}
		exists, err := s.routeRepo.PairExists(ctx, tx, req.HeatCenterID, req.DemandSiteID)
		if err != nil {
			return fmt.Errorf("check route pair: %w", err)
		}
		if exists {
			return fmt.Errorf("route already exists between these locations: %w", ErrConflict)
		}
		_, err = s.routeRepo.Create(ctx, tx, route)
		return err
	})
	if err != nil {
		return nil, err
	}
	return route, nil
}

func (s *routeService) Get(ctx context.Context, id uuid.UUID) (*types.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("route %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load route: %w", err)
	}
	return route, nil
}

func (s *routeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.routeRepo.Delete(ctx, nil, id)
}
