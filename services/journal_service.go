package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type JournalService struct{ db *gorm.DB }

func NewJournalService(db *gorm.DB) *JournalService { return &JournalService{db: db} }

type JournalInput struct {
	Title     string
	Content   string
	IsPrivate *bool
	Tags      []string
	Mood      *int
}

func (s *JournalService) validate(in JournalInput) error {
	if len(in.Title) > 200 {
		return fmt.Errorf("%w: title exceeds 200 characters", ErrValidation)
	}
	if len(in.Content) > 10000 {
		return fmt.Errorf("%w: content exceeds 10000 characters", ErrValidation)
	}
	if in.Mood != nil && (*in.Mood < 1 || *in.Mood > 5) {
		return fmt.Errorf("%w: mood must be between 1 and 5", ErrValidation)
	}
	return nil
}

func (s *JournalService) Create(userID uint, in JournalInput) (*models.JournalEntry, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	entry := models.JournalEntry{
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		IsPrivate: true,
		Tags:      strings.Join(in.Tags, ","),
		Mood:      in.Mood,
	}
	if in.IsPrivate != nil {
		entry.IsPrivate = *in.IsPrivate
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) List(userID uint, limit int) ([]models.JournalEntry, error) {
	q := s.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []models.JournalEntry
	err := q.Find(&entries).Error
	return entries, err
}

func (s *JournalService) Get(entryID, userID uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) Update(entryID, userID uint, in JournalInput) (*models.JournalEntry, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	entry, err := s.Get(entryID, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		entry.Title = in.Title
	}
	if in.Content != "" {
		entry.Content = in.Content
	}
	if in.IsPrivate != nil {
		entry.IsPrivate = *in.IsPrivate
	}
	if in.Tags != nil {
		entry.Tags = strings.Join(in.Tags, ",")
	}
	if in.Mood != nil {
		entry.Mood = in.Mood
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) Delete(entryID, userID uint) error {
	entry, err := s.Get(entryID, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}

type JournalStats struct {
	TotalEntries     int64       `json:"totalEntries"`
	EntriesLast30    int64       `json:"entriesLast30Days"`
	MoodDistribution map[int]int `json:"moodDistribution"`
}

func (s *JournalService) Stats(userID uint) (*JournalStats, error) {
	out := &JournalStats{MoodDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}

	if err := s.db.Model(&models.JournalEntry{}).
		Where("user_id = ?", userID).
		Count(&out.TotalEntries).Error; err != nil {
		return nil, err
	}

	since := dayStartLocal(time.Now()).AddDate(0, 0, -29)
	if err := s.db.Model(&models.JournalEntry{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&out.EntriesLast30).Error; err != nil {
		return nil, err
	}

	var moods []int
	if err := s.db.Model(&models.JournalEntry{}).
		Where("user_id = ? AND mood IS NOT NULL", userID).
		Pluck("mood", &moods).Error; err != nil {
		return nil, err
	}
	for _, m := range moods {
		if m >= 1 && m <= 5 {
			out.MoodDistribution[m]++
		}
	}
	return out, nil
}
