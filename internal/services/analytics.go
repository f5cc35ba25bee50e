package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

type EntityCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type DemandSiteCounts struct {
	Total     int64 `json:"total"`
	Connected int64 `json:"connected"`
}

type OverviewInfrastructure struct {
	HeatCenters EntityCounts     `json:"heat_centers"`
	DemandSites DemandSiteCounts `json:"demand_sites"`
	Routes      EntityCounts     `json:"routes"`
}

type OverviewCapacity struct {
	TotalGenerationCapacityMW  float64 `json:"total_generation_capacity_mw"`
	CurrentGenerationMW        float64 `json:"current_generation_mw"`
	CapacityUtilizationPercent float64 `json:"capacity_utilization_percent"`
	TotalPeakDemandMW          float64 `json:"total_peak_demand_mw"`
	CurrentDemandMW            float64 `json:"current_demand_mw"`
	DemandCoveragePercent      float64 `json:"demand_coverage_percent"`
}

type OverviewNetwork struct {
	TotalPipelineKM        float64 `json:"total_pipeline_km"`
	AverageRouteDistanceKM float64 `json:"average_route_distance_km"`
}

type AnalyticsOverview struct {
	Infrastructure OverviewInfrastructure `json:"infrastructure"`
	Capacity       OverviewCapacity       `json:"capacity"`
	Network        OverviewNetwork        `json:"network"`
}

type RouteSummary struct {
	RouteID       uuid.UUID         `json:"route_id"`
	HeatCenterID  *uuid.UUID        `json:"heat_center_id,omitempty"`
	DemandSiteID  *uuid.UUID        `json:"demand_site_id,omitempty"`
	DistanceKM    float64           `json:"distance_km"`
	CurrentFlowMW float64           `json:"current_flow_mw"`
	MaxCapacityMW float64           `json:"max_capacity_mw"`
	Status        types.RouteStatus `json:"status"`
}

type HeatCenterInfo struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	FuelType          string    `json:"fuel_type"`
	MaxCapacityMW     float64   `json:"max_capacity_mw"`
	CurrentOutputMW   float64   `json:"current_output_mw"`
	EfficiencyPercent float64   `json:"efficiency_percent"`
	IsActive          bool      `json:"is_active"`
}

type HeatCenterPerformance struct {
	CapacityUtilizationPercent float64 `json:"capacity_utilization_percent"`
	ConnectedDemandMW          float64 `json:"connected_demand_mw"`
	NumberOfRoutes             int     `json:"number_of_routes"`
}

type HeatCenterAnalytics struct {
	CenterInfo  HeatCenterInfo        `json:"center_info"`
	Performance HeatCenterPerformance `json:"performance"`
	Routes      []RouteSummary        `json:"routes"`
}

type DemandSiteInfo struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	SiteType        string    `json:"site_type"`
	PeakDemandMW    float64   `json:"peak_demand_mw"`
	CurrentDemandMW float64   `json:"current_demand_mw"`
	IsConnected     bool      `json:"is_connected"`
	PriorityLevel   int       `json:"priority_level"`
}

type DemandSiteSupply struct {
	TotalSupplyCapacityMW     float64 `json:"total_supply_capacity_mw"`
	CurrentSupplyMW           float64 `json:"current_supply_mw"`
	DemandCoveragePercent     float64 `json:"demand_coverage_percent"`
	CurrentUtilizationPercent float64 `json:"current_utilization_percent"`
}

type DemandSiteAnalytics struct {
	SiteInfo DemandSiteInfo   `json:"site_info"`
	Supply   DemandSiteSupply `json:"supply"`
	Routes   []RouteSummary   `json:"routes"`
}

// AnalyticsService computes derived views over the entity store. It is
// strictly read-only.
type AnalyticsService interface {
	Overview(ctx context.Context) (*AnalyticsOverview, error)
	HeatCenterAnalytics(ctx context.Context, id uuid.UUID) (*HeatCenterAnalytics, error)
	DemandSiteAnalytics(ctx context.Context, id uuid.UUID) (*DemandSiteAnalytics, error)
}

type analyticsService struct {
	db             *gorm.DB
	log            *logger.Logger
	heatCenterRepo repos.HeatCenterRepo
	demandSiteRepo repos.DemandSiteRepo
	routeRepo      repos.RouteRepo
	heatCenterSvc  HeatCenterService
	demandSiteSvc  DemandSiteService
}

func NewAnalyticsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	heatCenterRepo repos.HeatCenterRepo,
	demandSiteRepo repos.DemandSiteRepo,
	routeRepo repos.RouteRepo,
	heatCenterSvc HeatCenterService,
	demandSiteSvc DemandSiteService,
) AnalyticsService {
	return &analyticsService{
		db:             db,
		log:            baseLog.With("service", "AnalyticsService"),
		heatCenterRepo: heatCenterRepo,
		demandSiteRepo: demandSiteRepo,
		routeRepo:      routeRepo,
		heatCenterSvc:  heatCenterSvc,
		demandSiteSvc:  demandSiteSvc,
	}
}

func (s *analyticsService) Overview(ctx context.Context) (*AnalyticsOverview, error) {
	totalCenters, err := s.heatCenterRepo.Count(ctx, nil, false)
	if err != nil {
		return nil, fmt.Errorf("count heat centers: %w", err)
	}
	activeCenters, err := s.heatCenterRepo.Count(ctx, nil, true)
	if err != nil {
		return nil, fmt.Errorf("count active heat centers: %w", err)
	}
	totalSites, err := s.demandSiteRepo.Count(ctx, nil, false)
	if err != nil {
		return nil, fmt.Errorf("count demand sites: %w", err)
	}
	connectedSites, err := s.demandSiteRepo.Count(ctx, nil, true)
	if err != nil {
		return nil, fmt.Errorf("count connected demand sites: %w", err)
	}
	totalRoutes, err := s.routeRepo.Count(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("count routes: %w", err)
	}
	active := types.RouteStatusActive
	activeRoutes, err := s.routeRepo.Count(ctx, nil, &active)
	if err != nil {
		return nil, fmt.Errorf("count active routes: %w", err)
	}

	totalCapacity, currentOutput, err := s.heatCenterRepo.CapacityTotals(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sum capacity: %w", err)
	}
	totalDemand, currentDemand, err := s.demandSiteRepo.DemandTotals(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sum demand: %w", err)
	}
	totalPipelineKM, err := s.routeRepo.TotalDistance(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sum distance: %w", err)
	}

	averageDistance := 0.0
	if totalRoutes > 0 {
		averageDistance = round2(totalPipelineKM / float64(totalRoutes))
	}

	return &AnalyticsOverview{
		Infrastructure: OverviewInfrastructure{
			HeatCenters: EntityCounts{Total: totalCenters, Active: activeCenters},
			DemandSites: DemandSiteCounts{Total: totalSites, Connected: connectedSites},
			Routes:      EntityCounts{Total: totalRoutes, Active: activeRoutes},
		},
		Capacity: OverviewCapacity{
			TotalGenerationCapacityMW:  totalCapacity,
			CurrentGenerationMW:        currentOutput,
			CapacityUtilizationPercent: safePercent(currentOutput, totalCapacity),
			TotalPeakDemandMW:          totalDemand,
			CurrentDemandMW:            currentDemand,
			DemandCoveragePercent:      safePercent(totalCapacity, totalDemand),
		},
		Network: OverviewNetwork{
			TotalPipelineKM:        totalPipelineKM,
			AverageRouteDistanceKM: averageDistance,
		},
	}, nil
}

func (s *analyticsService) HeatCenterAnalytics(ctx context.Context, id uuid.UUID) (*HeatCenterAnalytics, error) {
	center, err := s.heatCenterSvc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	routes, err := s.routeRepo.ListByHeatCenter(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	connectedDemand := 0.0
	summaries := make([]RouteSummary, 0, len(routes))
	for _, route := range routes {
		connectedDemand += route.CurrentFlowMW
		demandSiteID := route.DemandSiteID
		summaries = append(summaries, RouteSummary{
			RouteID:       route.ID,
			DemandSiteID:  &demandSiteID,
			DistanceKM:    route.DistanceKM,
			CurrentFlowMW: route.CurrentFlowMW,
			MaxCapacityMW: route.MaxFlowCapacityMW,
			Status:        route.Status,
		})
	}

	return &HeatCenterAnalytics{
		CenterInfo: HeatCenterInfo{
			ID:                center.ID,
			Name:              center.Name,
			FuelType:          center.FuelType,
			MaxCapacityMW:     center.MaxCapacityMW,
			CurrentOutputMW:   center.CurrentOutputMW,
			EfficiencyPercent: center.EfficiencyPercent,
			IsActive:          center.IsActive,
		},
		Performance: HeatCenterPerformance{
			CapacityUtilizationPercent: safePercent(center.CurrentOutputMW, center.MaxCapacityMW),
			ConnectedDemandMW:          connectedDemand,
			NumberOfRoutes:             len(routes),
		},
		Routes: summaries,
	}, nil
}

func (s *analyticsService) DemandSiteAnalytics(ctx context.Context, id uuid.UUID) (*DemandSiteAnalytics, error) {
	site, err := s.demandSiteSvc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	routes, err := s.routeRepo.ListByDemandSite(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	var totalSupplyCapacity, currentSupply float64
	summaries := make([]RouteSummary, 0, len(routes))
	for _, route := range routes {
		totalSupplyCapacity += route.MaxFlowCapacityMW
		currentSupply += route.CurrentFlowMW
		heatCenterID := route.HeatCenterID
		summaries = append(summaries, RouteSummary{
			RouteID:       route.ID,
			HeatCenterID:  &heatCenterID,
			DistanceKM:    route.DistanceKM,
			CurrentFlowMW: route.CurrentFlowMW,
			MaxCapacityMW: route.MaxFlowCapacityMW,
			Status:        route.Status,
		})
	}

	return &DemandSiteAnalytics{
		SiteInfo: DemandSiteInfo{
			ID:              site.ID,
			Name:            site.Name,
			SiteType:        site.SiteType,
			PeakDemandMW:    site.PeakDemandMW,
			CurrentDemandMW: site.CurrentDemandMW,
			IsConnected:     site.IsConnected,
			PriorityLevel:   site.PriorityLevel,
		},
		Supply: DemandSiteSupply{
			TotalSupplyCapacityMW:     totalSupplyCapacity,
			CurrentSupplyMW:           currentSupply,
			DemandCoveragePercent:     safePercent(totalSupplyCapacity, site.PeakDemandMW),
			CurrentUtilizationPercent: safePercent(site.CurrentDemandMW, site.PeakDemandMW),
		},
		Routes: summaries,
	}, nil
}

// safePercent is the display-safety rule for every ratio in this package:
// a zero denominator yields 0 rather than an error, and results round to
// two decimals.
func safePercent(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return round2(numerator / denominator * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
