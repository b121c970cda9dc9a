package model

import (
	"time"

	"gorm.io/datatypes"
)

// Admin actions recorded in the audit trail.
const (
	AdminActionEnabled  = "enabled"
	AdminActionDisabled = "disabled"
	AdminActionUpdated  = "updated"
)

// AdminActionLog is the append-only audit trail for admin-initiated component
// mutations. Sync-driven writes do not log here.
type AdminActionLog struct {
	ID          int            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ComponentID string         `gorm:"column:component_id;type:varchar(191);index;not null" json:"component_id"`
	AdminUserID int            `gorm:"column:admin_user_id;not null" json:"admin_user_id"`
	Action      string         `gorm:"column:action;type:varchar(32);not null" json:"action"`
	OldValues   datatypes.JSON `gorm:"column:old_values;type:json" json:"old_values"`
	NewValues   datatypes.JSON `gorm:"column:new_values;type:json" json:"new_values"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for AdminActionLog model
func (AdminActionLog) TableName() string {
	return "admin_action_logs"
}
