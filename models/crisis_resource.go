package models

import (
	"time"

	"gorm.io/gorm"
)

// CrisisResource is read-mostly reference data, mutated only by admin routes.
type CrisisResource struct {
	gorm.Model
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
	Category    string `gorm:"size:50;index" json:"category"` // hotline|text|chat|local
	Phone       string `gorm:"size:50" json:"phone"`
	TextNumber  string `gorm:"size:50" json:"textNumber"`
	Website     string `gorm:"size:500" json:"website"`
	Region      string `gorm:"size:20;index;default:global" json:"region"`
	Priority    int    `gorm:"default:0;index" json:"priority"` // higher shown first
	IsVerified  bool   `gorm:"default:false" json:"isVerified"`
	Available   string `gorm:"size:50" json:"available"` // e.g. "24/7"
}

// CrisisAccessLog records anonymous usage telemetry for the directory.
type CrisisAccessLog struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index"`
	ResourceID *uint  `gorm:"index"`
	ActionType string `gorm:"size:30;not null"` // viewed|called|texted|visited
	CreatedAt  time.Time
}
