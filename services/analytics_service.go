package services

import (
	"context"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type DayBreakdown struct {
	Date              string `json:"date"`
	Mood              int    `json:"mood,omitempty"`
	HabitsCompleted   int    `json:"habitsCompleted"`
	MeditationMinutes int    `json:"meditationMinutes"`
	JournalEntries    int    `json:"journalEntries"`
}

type WellnessSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	AverageMood         float64 `json:"averageMood"`
	MoodEntries         int     `json:"moodEntries"`
	HabitCompletions    int64   `json:"habitCompletions"`
	HabitCompletionRate float64 `json:"habitCompletionRate"`
	MeditationMinutes   int     `json:"meditationMinutes"`
	MeditationSessions  int     `json:"meditationSessions"`
	JournalEntries      int64   `json:"journalEntries"`
	ActiveGoals         int64   `json:"activeGoals"`
	AverageGoalProgress float64 `json:"averageGoalProgress"`

	Days []DayBreakdown `json:"days,omitempty"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

// Summary folds mood, habit, meditation, journal and goal records over a date
// window into one view. Read-only; empty windows produce zeros.
func (s *AnalyticsService) Summary(
	ctx context.Context, userID uint, from, to time.Time, includeMissing bool,
) (*WellnessSummary, error) {

	start := dayStartLocal(from)
	end := dayEnd(to)

	var moods []models.MoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&moods).Error; err != nil {
		return nil, err
	}

	var habitEntries []models.HabitEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND date BETWEEN ? AND ?", userID, true, start, end).
		Find(&habitEntries).Error; err != nil {
		return nil, err
	}

	var sessions []models.MeditationSession
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND session_date BETWEEN ? AND ?", userID, true, start, end).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	var journalCount int64
	if err := s.db.WithContext(ctx).Model(&models.JournalEntry{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Count(&journalCount).Error; err != nil {
		return nil, err
	}
	journalByDay := map[string]int{}
	var journals []models.JournalEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Find(&journals).Error; err != nil {
		return nil, err
	}
	for _, j := range journals {
		journalByDay[dayStartLocal(j.CreatedAt).Format("2006-01-02")]++
	}

	// index per-day records by yyyy-mm-dd for missing-day handling
	moodIdx := map[string]models.MoodEntry{}
	for _, m := range moods {
		moodIdx[m.Date.Format("2006-01-02")] = m
	}
	habitIdx := map[string]int{}
	for _, e := range habitEntries {
		habitIdx[e.Date.Format("2006-01-02")]++
	}
	medIdx := map[string]int{}
	for _, sess := range sessions {
		medIdx[dayStartLocal(sess.SessionDate).Format("2006-01-02")] += sess.CompletedDuration
	}

	out := &WellnessSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")
	out.Metadata.IncludeMissingDays = includeMissing

	var dates []time.Time
	if includeMissing {
		for d := start; !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	} else {
		for _, m := range moods {
			dates = append(dates, dayStartLocal(m.Date))
		}
	}
	out.Metadata.DaysCounted = len(dates)

	for _, d := range dates {
		key := d.Format("2006-01-02")
		day := DayBreakdown{
			Date:              key,
			HabitsCompleted:   habitIdx[key],
			MeditationMinutes: medIdx[key],
			JournalEntries:    journalByDay[key],
		}
		if m, ok := moodIdx[key]; ok {
			day.Mood = m.Mood
		}
		out.Days = append(out.Days, day)
	}

	out.MoodEntries = len(moods)
	out.AverageMood = avg(sumMoods(moods), len(moods))

	out.HabitCompletions = int64(len(habitEntries))
	out.HabitCompletionRate = s.completionRate(userID, start, to, int64(len(habitEntries)))

	out.MeditationSessions = len(sessions)
	for _, sess := range sessions {
		out.MeditationMinutes += sess.CompletedDuration
	}
	out.JournalEntries = journalCount

	if err := s.db.WithContext(ctx).Model(&models.Goal{}).
		Where("user_id = ? AND status = ?", userID, models.GoalActive).
		Count(&out.ActiveGoals).Error; err != nil {
		return nil, err
	}
	if out.ActiveGoals > 0 {
		var goals []models.Goal
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND status = ?", userID, models.GoalActive).
			Find(&goals).Error; err != nil {
			return nil, err
		}
		var sum float64
		for _, g := range goals {
			sum += float64(g.Progress)
		}
		out.AverageGoalProgress = avg(sum, len(goals))
	}

	return out, nil
}

func sumMoods(entries []models.MoodEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += float64(e.Mood)
	}
	return sum
}

// completionRate mirrors the habit stats denominator over an arbitrary window:
// daily habits expect one entry per day, weekly/monthly one per started week.
func (s *AnalyticsService) completionRate(userID uint, from, to time.Time, completed int64) float64 {
	var habits []models.Habit
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&habits).Error; err != nil {
		return 0
	}

	days := int(dayStartLocal(to).Sub(dayStartLocal(from)).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	weeks := (days + 6) / 7

	expected := 0
	for _, h := range habits {
		if h.Frequency == models.FrequencyDaily {
			expected += days
		} else {
			expected += weeks
		}
	}
	if expected == 0 {
		return 0
	}
	rate := float64(completed) / float64(expected)
	if rate > 1 {
		rate = 1
	}
	return round2(rate)
}
