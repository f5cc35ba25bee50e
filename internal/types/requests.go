package types

import (
	"time"

	"github.com/google/uuid"
)

// Create payloads. Required numeric fields are pointers so a literal zero
// survives the `required` binding check; optional fields get their defaults
// applied in the service layer.

type HeatCenterCreate struct {
	Name              string     `json:"name" binding:"required"`
	LocationLat       *float64   `json:"location_lat" binding:"required"`
	LocationLng       *float64   `json:"location_lng" binding:"required"`
	Address           string     `json:"address"`
	MaxCapacityMW     *float64   `json:"max_capacity_mw" binding:"required"`
	CurrentOutputMW   *float64   `json:"current_output_mw"`
	EfficiencyPercent *float64   `json:"efficiency_percent"`
	FuelType          string     `json:"fuel_type"`
	IsActive          *bool      `json:"is_active"`
	CommissioningDate *time.Time `json:"commissioning_date"`
	LastMaintenance   *time.Time `json:"last_maintenance"`
	Description       string     `json:"description"`
}

type DemandSiteCreate struct {
	Name                 string     `json:"name" binding:"required"`
	LocationLat          *float64   `json:"location_lat" binding:"required"`
	LocationLng          *float64   `json:"location_lng" binding:"required"`
	Address              string     `json:"address"`
	SiteType             string     `json:"site_type"`
	PeakDemandMW         *float64   `json:"peak_demand_mw" binding:"required"`
	CurrentDemandMW      *float64   `json:"current_demand_mw"`
	AnnualConsumptionMWH *float64   `json:"annual_consumption_mwh"`
	IsConnected          *bool      `json:"is_connected"`
	ConnectionDate       *time.Time `json:"connection_date"`
	PriorityLevel        *int       `json:"priority_level"`
	FloorAreaSqm         *float64   `json:"floor_area_sqm"`
	BuildingAgeYears     *int       `json:"building_age_years"`
	InsulationRating     string     `json:"insulation_rating"`
	Description          string     `json:"description"`
}

type RouteCreate struct {
	HeatCenterID          uuid.UUID    `json:"heat_center_id" binding:"required"`
	DemandSiteID          uuid.UUID    `json:"demand_site_id" binding:"required"`
	DistanceKM            *float64     `json:"distance_km" binding:"required"`
	PipeDiameterMM        *int         `json:"pipe_diameter_mm"`
	MaxFlowCapacityMW     *float64     `json:"max_flow_capacity_mw" binding:"required"`
	CurrentFlowMW         *float64     `json:"current_flow_mw"`
	SupplyTempCelsius     *float64     `json:"supply_temp_celsius"`
	ReturnTempCelsius     *float64     `json:"return_temp_celsius"`
	PressureBar           *float64     `json:"pressure_bar"`
	HeatLossPercent       *float64     `json:"heat_loss_percent"`
	InstallationYear      *int         `json:"installation_year"`
	PipeMaterial          string       `json:"pipe_material"`
	InsulationType        string       `json:"insulation_type"`
	Status                *RouteStatus `json:"status"`
	IsBidirectional       *bool        `json:"is_bidirectional"`
	MaintenanceDue        *time.Time   `json:"maintenance_due"`
	ConstructionCost      *float64     `json:"construction_cost"`
	AnnualMaintenanceCost *float64     `json:"annual_maintenance_cost"`
}
