package models

import (
	"time"

	"gorm.io/gorm"
)

// MoodEntry is one mood log per user per calendar day. The one-per-day rule is
// enforced on the write path (upsert by user_id + date), not by a DB constraint.
type MoodEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"userId"`
	Mood   int       `gorm:"not null" json:"mood"` // 1..5
	Note   string    `gorm:"size:500" json:"note"`
	Date   time.Time `gorm:"index;not null" json:"date"` // truncated to local midnight
	Tags   string    `gorm:"size:500" json:"tags"`       // comma-separated
}
