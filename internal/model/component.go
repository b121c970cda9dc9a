package model

import (
	"time"

	"gorm.io/datatypes"
)

// Component types reported by the provider.
const (
	ComponentTypeCPU      = "cpu"
	ComponentTypeMemory   = "memory"
	ComponentTypeStorage  = "storage"
	ComponentTypeLocation = "location"
	ComponentTypeOS       = "operatingSystems"
)

// Component represents one sellable catalog row. The id is the provider's
// stable identifier; specs and datapacket_data are open JSON blobs whose shape
// follows whatever the provider reported last.
type Component struct {
	ID                  string         `gorm:"column:id;primaryKey;type:varchar(191)" json:"id"`
	Name                string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Type                string         `gorm:"column:type;type:varchar(64);index;not null" json:"type"`
	BasePrice           float64        `gorm:"column:base_price;type:decimal(10,2);default:0" json:"base_price"`
	Specs               datatypes.JSON `gorm:"column:specs;type:json" json:"specs"`
	DatapacketData      datatypes.JSON `gorm:"column:datapacket_data;type:json" json:"datapacket_data"`
	IsEnabled           bool           `gorm:"column:is_enabled;default:true" json:"is_enabled"`
	CustomName          *string        `gorm:"column:custom_name;type:varchar(255)" json:"custom_name"`
	CustomPrice         *float64       `gorm:"column:custom_price;type:decimal(10,2)" json:"custom_price"`
	AdminNotes          string         `gorm:"column:admin_notes;type:text" json:"admin_notes"`
	SortOrder           int            `gorm:"column:sort_order;default:0" json:"sort_order"`
	FirstSeenAt         time.Time      `gorm:"column:first_seen_at;autoCreateTime" json:"first_seen_at"`
	LastUpdatedAt       time.Time      `gorm:"column:last_updated_at;autoUpdateTime" json:"last_updated_at"`
	DatapacketUpdatedAt *time.Time     `gorm:"column:datapacket_updated_at" json:"datapacket_updated_at"`
}

// TableName specifies the table name for Component model
func (Component) TableName() string {
	return "components"
}
