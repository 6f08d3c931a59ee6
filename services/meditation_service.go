package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type MeditationService struct{ db *gorm.DB }

func NewMeditationService(db *gorm.DB) *MeditationService { return &MeditationService{db: db} }

type SessionInput struct {
	Type       string
	Duration   int
	MoodBefore *int
}

// Start records a session at its beginning; completion arrives as a follow-up
// patch when the timer elapses or the user bails early.
func (s *MeditationService) Start(userID uint, in SessionInput) (*models.MeditationSession, error) {
	switch in.Type {
	case models.SessionTimer, models.SessionGuided, models.SessionBreathing:
	default:
		return nil, fmt.Errorf("%w: type must be timer, guided or breathing", ErrValidation)
	}
	if in.Duration < 1 {
		return nil, fmt.Errorf("%w: duration must be at least 1 minute", ErrValidation)
	}
	if in.MoodBefore != nil && (*in.MoodBefore < 1 || *in.MoodBefore > 5) {
		return nil, fmt.Errorf("%w: mood must be between 1 and 5", ErrValidation)
	}

	session := models.MeditationSession{
		UserID:      userID,
		Type:        in.Type,
		Duration:    in.Duration,
		MoodBefore:  in.MoodBefore,
		SessionDate: time.Now(),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MeditationService) Complete(sessionID, userID uint, completedDuration int, moodAfter *int) (*models.MeditationSession, error) {
	if completedDuration < 0 {
		return nil, fmt.Errorf("%w: completedDuration must not be negative", ErrValidation)
	}
	if moodAfter != nil && (*moodAfter < 1 || *moodAfter > 5) {
		return nil, fmt.Errorf("%w: mood must be between 1 and 5", ErrValidation)
	}

	var session models.MeditationSession
	err := s.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session.CompletedDuration = completedDuration
	session.Completed = true
	if moodAfter != nil {
		session.MoodAfter = moodAfter
	}
	if err := s.db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MeditationService) List(userID uint, limit int) ([]models.MeditationSession, error) {
	q := s.db.Where("user_id = ?", userID).Order("session_date desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var sessions []models.MeditationSession
	err := q.Find(&sessions).Error
	return sessions, err
}

type MeditationStats struct {
	TotalSessions     int     `json:"totalSessions"`
	CompletedSessions int     `json:"completedSessions"`
	TotalMinutes      int     `json:"totalMinutes"`
	AverageMoodDelta  float64 `json:"averageMoodDelta"` // after minus before, sessions with both
}

func (s *MeditationService) Stats(userID uint) (*MeditationStats, error) {
	var sessions []models.MeditationSession
	if err := s.db.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return nil, err
	}

	out := &MeditationStats{TotalSessions: len(sessions)}
	var deltaSum float64
	deltaN := 0
	for _, sess := range sessions {
		if sess.Completed {
			out.CompletedSessions++
			out.TotalMinutes += sess.CompletedDuration
		}
		if sess.MoodBefore != nil && sess.MoodAfter != nil {
			deltaSum += float64(*sess.MoodAfter - *sess.MoodBefore)
			deltaN++
		}
	}
	out.AverageMoodDelta = avg(deltaSum, deltaN)
	return out, nil
}
