package store

import "time"

// SyncRun is the persisted outcome of one source sync.
type SyncRun struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	RunID      string    `gorm:"size:36;not null;index" json:"runId"`
	Source     string    `gorm:"size:32;not null;index" json:"source"`
	Success    bool      `json:"success"`
	Processed  int       `json:"processed"`
	Added      int       `json:"added"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Errors     []string  `gorm:"serializer:json" json:"errors"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `gorm:"index" json:"finishedAt"`
}

// TableName pins the table name.
func (SyncRun) TableName() string {
	return "ipo_sync_runs"
}
