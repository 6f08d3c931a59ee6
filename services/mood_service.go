package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type MoodService struct{ db *gorm.DB }

func NewMoodService(db *gorm.DB) *MoodService { return &MoodService{db: db} }

type MoodInput struct {
	Mood int
	Note string
	Date time.Time // zero value means today
	Tags []string
}

// RecordForDay upserts the mood entry for (user, local calendar day): at most
// one row per day, the latest write wins.
func (s *MoodService) RecordForDay(userID uint, in MoodInput) (*models.MoodEntry, error) {
	if in.Mood < 1 || in.Mood > 5 {
		return nil, fmt.Errorf("%w: mood must be between 1 and 5", ErrValidation)
	}
	if len(in.Note) > 500 {
		return nil, fmt.Errorf("%w: note exceeds 500 characters", ErrValidation)
	}

	day := in.Date
	if day.IsZero() {
		day = time.Now()
	}
	start := dayStartLocal(day)
	end := start.Add(24 * time.Hour)

	entry := models.MoodEntry{
		UserID: userID,
		Mood:   in.Mood,
		Note:   in.Note,
		Date:   start,
		Tags:   strings.Join(in.Tags, ","),
	}

	// Assign with a map so a later write can clear note/tags back to empty.
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Assign(map[string]interface{}{
			"mood": in.Mood,
			"note": in.Note,
			"tags": entry.Tags,
		}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MoodService) List(userID uint, startDate, endDate *time.Time, limit int) ([]models.MoodEntry, error) {
	q := s.db.Where("user_id = ?", userID)
	if startDate != nil {
		q = q.Where("date >= ?", dayStartLocal(*startDate))
	}
	if endDate != nil {
		q = q.Where("date <= ?", dayEnd(*endDate))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []models.MoodEntry
	if err := q.Order("date desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

const trendWindow = 7

type MoodStats struct {
	TotalEntries     int         `json:"totalEntries"`
	AverageMood      float64     `json:"averageMood"`
	MoodDistribution map[int]int `json:"moodDistribution"`
	Trend            string      `json:"trend"` // improving | declining | stable
}

// Stats folds the last periodDays of entries into average, per-value
// distribution and a two-window trend label.
func (s *MoodService) Stats(userID uint, periodDays int) (*MoodStats, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	since := dayStartLocal(time.Now()).AddDate(0, 0, -(periodDays - 1))

	var entries []models.MoodEntry
	if err := s.db.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := &MoodStats{
		TotalEntries:     len(entries),
		MoodDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		Trend:            "stable",
	}
	if len(entries) == 0 {
		return out, nil
	}

	var sum float64
	for _, e := range entries {
		sum += float64(e.Mood)
		out.MoodDistribution[e.Mood]++
	}
	out.AverageMood = avg(sum, len(entries))

	// Trend compares the mean of the newest 7 entries against the oldest 7.
	// Two full non-overlapping windows are required; otherwise "stable".
	if len(entries) >= 2*trendWindow {
		var oldSum, newSum float64
		for i := 0; i < trendWindow; i++ {
			oldSum += float64(entries[i].Mood)
			newSum += float64(entries[len(entries)-trendWindow+i].Mood)
		}
		diff := (newSum - oldSum) / trendWindow
		switch {
		case diff > 0.3:
			out.Trend = "improving"
		case diff < -0.3:
			out.Trend = "declining"
		}
	}

	return out, nil
}
