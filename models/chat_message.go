package models

import (
	"time"
)

// ChatMessage is one turn of the supportive chat, user input and bot reply.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Message   string    `gorm:"size:2000;not null" json:"message"`
	Response  string    `gorm:"type:text" json:"response"`
	IsCrisis  bool      `json:"isCrisis"`
	CreatedAt time.Time `json:"createdAt"`
}
