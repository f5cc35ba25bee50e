package types

import (
	"time"

	"github.com/google/uuid"
)

// HeatCenter is a supply point in the network: a power plant, waste-heat
// recovery facility, geothermal source, or similar.
type HeatCenter struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string     `gorm:"not null;index;column:name" json:"name"`
	LocationLat       float64    `gorm:"not null;column:location_lat" json:"location_lat"`
	LocationLng       float64    `gorm:"not null;column:location_lng" json:"location_lng"`
	Address           string     `gorm:"column:address" json:"address"`
	MaxCapacityMW     float64    `gorm:"not null;column:max_capacity_mw" json:"max_capacity_mw"`
	CurrentOutputMW   float64    `gorm:"column:current_output_mw" json:"current_output_mw"`
	EfficiencyPercent float64    `gorm:"column:efficiency_percent" json:"efficiency_percent"`
	FuelType          string     `gorm:"column:fuel_type" json:"fuel_type"`
	IsActive          bool       `gorm:"column:is_active" json:"is_active"`
	CommissioningDate *time.Time `gorm:"column:commissioning_date" json:"commissioning_date"`
	LastMaintenance   *time.Time `gorm:"column:last_maintenance" json:"last_maintenance"`
	Description       string     `gorm:"column:description;type:text" json:"description"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`
}

func (HeatCenter) TableName() string { return "heat_centers" }
