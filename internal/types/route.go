package types

import (
	"time"

	"github.com/google/uuid"
)

// RouteStatus is the closed set of operational states a route can be in.
// Unrecognized values are rejected at the API boundary.
type RouteStatus string

const (
	RouteStatusActive      RouteStatus = "active"
	RouteStatusInactive    RouteStatus = "inactive"
	RouteStatusMaintenance RouteStatus = "maintenance"
	RouteStatusPlanned     RouteStatus = "planned"
)

func (s RouteStatus) Valid() bool {
	switch s {
	case RouteStatusActive, RouteStatusInactive, RouteStatusMaintenance, RouteStatusPlanned:
		return true
	}
	return false
}

// Route is a pipeline connection between exactly one heat center and one
// demand site. The (heat_center_id, demand_site_id) pair is unique across
// the live route set.
type Route struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	HeatCenterID          uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_route_pair" json:"heat_center_id"`
	DemandSiteID          uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_route_pair" json:"demand_site_id"`
	DistanceKM            float64     `gorm:"not null;column:distance_km" json:"distance_km"`
	PipeDiameterMM        *int        `gorm:"column:pipe_diameter_mm" json:"pipe_diameter_mm"`
	MaxFlowCapacityMW     float64     `gorm:"not null;column:max_flow_capacity_mw" json:"max_flow_capacity_mw"`
	CurrentFlowMW         float64     `gorm:"column:current_flow_mw" json:"current_flow_mw"`
	SupplyTempCelsius     float64     `gorm:"column:supply_temp_celsius" json:"supply_temp_celsius"`
	ReturnTempCelsius     float64     `gorm:"column:return_temp_celsius" json:"return_temp_celsius"`
	PressureBar           float64     `gorm:"column:pressure_bar" json:"pressure_bar"`
	HeatLossPercent       float64     `gorm:"column:heat_loss_percent" json:"heat_loss_percent"`
	InstallationYear      *int        `gorm:"column:installation_year" json:"installation_year"`
	PipeMaterial          string      `gorm:"column:pipe_material" json:"pipe_material"`
	InsulationType        string      `gorm:"column:insulation_type" json:"insulation_type"`
	Status                RouteStatus `gorm:"column:status;index" json:"status"`
	IsBidirectional       bool        `gorm:"column:is_bidirectional" json:"is_bidirectional"`
	MaintenanceDue        *time.Time  `gorm:"column:maintenance_due" json:"maintenance_due"`
	ConstructionCost      *float64    `gorm:"column:construction_cost" json:"construction_cost"`
	AnnualMaintenanceCost *float64    `gorm:"column:annual_maintenance_cost" json:"annual_maintenance_cost"`
	CreatedAt             time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time   `gorm:"not null" json:"updated_at"`
}

func (Route) TableName() string { return "routes" }
