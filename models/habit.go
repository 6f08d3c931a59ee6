package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

type Habit struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Category    string `gorm:"size:50" json:"category"`
	Frequency   string `gorm:"size:10;not null" json:"frequency"` // daily|weekly|monthly
	TargetCount int    `gorm:"default:1" json:"targetCount"`
	Unit        string `gorm:"size:20" json:"unit"`
	Icon        string `gorm:"size:50" json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	// Streak state, recomputed on every entry write.
	StreakCurrent     int        `json:"streakCurrent"`
	StreakLongest     int        `json:"streakLongest"`
	LastCompletedDate *time.Time `json:"lastCompletedDate,omitempty"`

	Entries []HabitEntry `gorm:"constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

// HabitEntry is one completion record per habit per calendar day, same upsert
// discipline as MoodEntry.
type HabitEntry struct {
	gorm.Model
	HabitID   uint      `gorm:"index;not null" json:"habitId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Date      time.Time `gorm:"index;not null" json:"date"` // local midnight
	Completed bool      `json:"completed"`
	Count     int       `json:"count"`
}
