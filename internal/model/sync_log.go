package model

import "time"

// SyncLog records one sync run. Rows are append-only; the only mutation is the
// closeout that fills sync_finished_at and the final counters.
type SyncLog struct {
	ID                int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RunID             string     `gorm:"column:run_id;type:varchar(36);index;not null" json:"run_id"`
	SyncStartedAt     time.Time  `gorm:"column:sync_started_at;not null" json:"sync_started_at"`
	SyncFinishedAt    *time.Time `gorm:"column:sync_finished_at" json:"sync_finished_at"`
	ComponentsAdded   int        `gorm:"column:components_added;default:0" json:"components_added"`
	ComponentsUpdated int        `gorm:"column:components_updated;default:0" json:"components_updated"`
	OSAdded           int        `gorm:"column:os_added;default:0" json:"os_added"`
	OSUpdated         int        `gorm:"column:os_updated;default:0" json:"os_updated"`
}

// TableName specifies the table name for SyncLog model
func (SyncLog) TableName() string {
	return "sync_logs"
}
