package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConfigTypeString  = "string"
	ConfigTypeInteger = "integer"
	ConfigTypeFloat   = "float"
	ConfigTypeBoolean = "boolean"
	ConfigTypeJSON    = "json"
)

func ValidConfigType(t string) bool {
	switch t {
	case ConfigTypeString, ConfigTypeInteger, ConfigTypeFloat, ConfigTypeBoolean, ConfigTypeJSON:
		return true
	}
	return false
}

// SystemConfig holds map display settings and other system parameters as
// string-encoded values with a type tag applied on read.
type SystemConfig struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConfigKey   string    `gorm:"uniqueIndex;not null;column:config_key" json:"config_key"`
	ConfigValue string    `gorm:"not null;column:config_value;type:text" json:"config_value"`
	ConfigType  string    `gorm:"column:config_type" json:"config_type"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (SystemConfig) TableName() string { return "system_config" }
