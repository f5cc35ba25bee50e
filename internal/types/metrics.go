package types

import (
	"time"

	"github.com/google/uuid"
)

// Historical metrics tables. Declared and migrated as an extension point for
// time-series ingestion; no API operation reads or writes them yet.

type HeatCenterMetrics struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HeatCenterID       uuid.UUID `gorm:"type:uuid;not null;index" json:"heat_center_id"`
	Timestamp          time.Time `gorm:"not null;index" json:"timestamp"`
	OutputMW           float64   `gorm:"not null;column:output_mw" json:"output_mw"`
	EfficiencyPercent  *float64  `gorm:"column:efficiency_percent" json:"efficiency_percent"`
	FuelConsumption    *float64  `gorm:"column:fuel_consumption" json:"fuel_consumption"`
	OperationalCostHr  *float64  `gorm:"column:operational_cost_hour" json:"operational_cost_hour"`
	CO2EmissionsKgHour *float64  `gorm:"column:co2_emissions_kg_hour" json:"co2_emissions_kg_hour"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}

func (HeatCenterMetrics) TableName() string { return "heat_center_metrics" }

type DemandSiteMetrics struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DemandSiteID      uuid.UUID `gorm:"type:uuid;not null;index" json:"demand_site_id"`
	Timestamp         time.Time `gorm:"not null;index" json:"timestamp"`
	DemandMW          float64   `gorm:"not null;column:demand_mw" json:"demand_mw"`
	SupplyTempCelsius *float64  `gorm:"column:supply_temp_celsius" json:"supply_temp_celsius"`
	ReturnTempCelsius *float64  `gorm:"column:return_temp_celsius" json:"return_temp_celsius"`
	FlowRateM3Hour    *float64  `gorm:"column:flow_rate_m3_hour" json:"flow_rate_m3_hour"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}

func (DemandSiteMetrics) TableName() string { return "demand_site_metrics" }

type RouteMetrics struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RouteID           uuid.UUID `gorm:"type:uuid;not null;index" json:"route_id"`
	Timestamp         time.Time `gorm:"not null;index" json:"timestamp"`
	FlowMW            float64   `gorm:"not null;column:flow_mw" json:"flow_mw"`
	SupplyTempCelsius *float64  `gorm:"column:supply_temp_celsius" json:"supply_temp_celsius"`
	ReturnTempCelsius *float64  `gorm:"column:return_temp_celsius" json:"return_temp_celsius"`
	PressureBar       *float64  `gorm:"column:pressure_bar" json:"pressure_bar"`
	HeatLossMW        *float64  `gorm:"column:heat_loss_mw" json:"heat_loss_mw"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}

func (RouteMetrics) TableName() string { return "route_metrics" }
