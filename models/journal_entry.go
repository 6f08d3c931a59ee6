package models

import (
	"gorm.io/gorm"
)

type JournalEntry struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"userId"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Content   string `gorm:"size:10000;not null" json:"content"`
	IsPrivate bool   `gorm:"default:true" json:"isPrivate"`
	Tags      string `gorm:"size:500" json:"tags"`
	Mood      *int   `json:"mood,omitempty"` // optional 1..5 snapshot
}
