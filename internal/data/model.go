package data

import (
	"time"
)

// Entry represents the kv_entries table backing the postgres driver
type Entry struct {
	Key       string    `gorm:"primaryKey;size:512"`
	Value     string    `gorm:"not null;type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Entry) TableName() string {
	return "kv_entries"
}
