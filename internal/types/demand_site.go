package types

import (
	"time"

	"github.com/google/uuid"
)

// DemandSite is a consumer of heat: a hotel, residential complex,
// office tower, hospital, industrial park, and so on.
type DemandSite struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                 string     `gorm:"not null;index;column:name" json:"name"`
	LocationLat          float64    `gorm:"not null;column:location_lat" json:"location_lat"`
	LocationLng          float64    `gorm:"not null;column:location_lng" json:"location_lng"`
	Address              string     `gorm:"column:address" json:"address"`
	SiteType             string     `gorm:"column:site_type;index" json:"site_type"`
	PeakDemandMW         float64    `gorm:"not null;column:peak_demand_mw" json:"peak_demand_mw"`
	CurrentDemandMW      float64    `gorm:"column:current_demand_mw" json:"current_demand_mw"`
	AnnualConsumptionMWH *float64   `gorm:"column:annual_consumption_mwh" json:"annual_consumption_mwh"`
	IsConnected          bool       `gorm:"column:is_connected" json:"is_connected"`
	ConnectionDate       *time.Time `gorm:"column:connection_date" json:"connection_date"`
	PriorityLevel        int        `gorm:"column:priority_level" json:"priority_level"`
	FloorAreaSqm         *float64   `gorm:"column:floor_area_sqm" json:"floor_area_sqm"`
	BuildingAgeYears     *int       `gorm:"column:building_age_years" json:"building_age_years"`
	InsulationRating     string     `gorm:"column:insulation_rating" json:"insulation_rating"`
	Description          string     `gorm:"column:description;type:text" json:"description"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`
}

func (DemandSite) TableName() string { return "demand_sites" }
