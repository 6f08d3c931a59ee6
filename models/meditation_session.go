package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionTimer     = "timer"
	SessionGuided    = "guided"
	SessionBreathing = "breathing"
)

// MeditationSession is created when a session starts and patched on completion.
type MeditationSession struct {
	gorm.Model
	UserID            uint      `gorm:"index;not null" json:"userId"`
	Type              string    `gorm:"size:10;not null" json:"type"` // timer|guided|breathing
	Duration          int       `json:"duration"`                     // planned minutes
	CompletedDuration int       `json:"completedDuration"`            // actual minutes
	Completed         bool      `json:"completed"`
	MoodBefore        *int      `json:"moodBefore,omitempty"`
	MoodAfter         *int      `json:"moodAfter,omitempty"`
	SessionDate       time.Time `gorm:"index;not null" json:"sessionDate"`
}
