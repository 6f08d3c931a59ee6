package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalActive    = "active"
	GoalPaused    = "paused"
	GoalCompleted = "completed"
	GoalCancelled = "cancelled"
)

type Goal struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	Category    string     `gorm:"size:50" json:"category"`
	Priority    string     `gorm:"size:10;default:medium" json:"priority"` // low|medium|high
	Status      string     `gorm:"size:10;default:active" json:"status"`
	Progress    int        `gorm:"default:0" json:"progress"` // 0..100, independent of milestones
	TargetDate  time.Time  `json:"targetDate"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Milestones []GoalMilestone `gorm:"constraint:OnDelete:CASCADE" json:"milestones"`
}

type GoalMilestone struct {
	gorm.Model
	GoalID    uint   `gorm:"index;not null" json:"goalId"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Completed bool   `json:"completed"`
}
