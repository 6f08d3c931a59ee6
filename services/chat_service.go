package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vijay-C-S/zenzone-sub001/models"
	"github.com/Vijay-C-S/zenzone-sub001/utils"

	"gorm.io/gorm"
)

type ChatService struct {
	db     *gorm.DB
	client CompletionClient
	crisis *CrisisService
}

func NewChatService(db *gorm.DB, client CompletionClient, crisis *CrisisService) *ChatService {
	return &ChatService{db: db, client: client, crisis: crisis}
}

type ChatReply struct {
	Message   *models.ChatMessage     `json:"message"`
	IsCrisis  bool                    `json:"isCrisis"`
	Resources []models.CrisisResource `json:"resources,omitempty"`
}

// Fallback when the completion service is unavailable. The user-facing request
// never fails on an upstream error.
const fallbackResponse = "Thank you for sharing that with me. I'm having trouble finding the right words just now, but I'm here and listening. Would you like to tell me more about how you're feeling?"

// Send scans the input for crisis keywords before anything else. A crisis hit
// skips the model entirely and answers with the disclaimer plus emergency
// resources.
func (s *ChatService) Send(ctx context.Context, userID uint, message string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if len(message) > 2000 {
		return nil, fmt.Errorf("%w: message exceeds 2000 characters", ErrValidation)
	}

	findings := utils.DetectCrisisKeywords(message)
	reply := &ChatReply{IsCrisis: utils.IsCrisis(findings)}

	var response string
	if reply.IsCrisis {
		resources, err := s.crisis.Emergency("", 3)
		if err == nil {
			reply.Resources = resources
		}
		response = utils.CrisisDisclaimer
	} else {
		prompt := fmt.Sprintf(
			"You are a warm, supportive mental-wellness companion. Respond with empathy in 2-3 sentences.\nUser: %s\nCompanion:",
			message,
		)
		text, err := s.client.Complete(ctx, prompt, "supportive")
		if err != nil || text == "" {
			response = fallbackResponse
		} else {
			response = text + "\n\n" + utils.ChatDisclaimer
		}
	}

	msg := models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: response,
		IsCrisis: reply.IsCrisis,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	reply.Message = &msg
	return reply, nil
}

func (s *ChatService) History(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []models.ChatMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
