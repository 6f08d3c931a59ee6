package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type HabitService struct{ db *gorm.DB }

func NewHabitService(db *gorm.DB) *HabitService { return &HabitService{db: db} }

type HabitInput struct {
	Name        string
	Description string
	Category    string
	Frequency   string
	TargetCount int
	Unit        string
	Icon        string
}

func (s *HabitService) Create(userID uint, in HabitInput) (*models.Habit, error) {
	if in.TargetCount < 1 {
		return nil, fmt.Errorf("%w: targetCount must be at least 1", ErrValidation)
	}
	switch in.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		return nil, fmt.Errorf("%w: frequency must be daily, weekly or monthly", ErrValidation)
	}

	habit := models.Habit{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Frequency:   in.Frequency,
		TargetCount: in.TargetCount,
		Unit:        in.Unit,
		Icon:        in.Icon,
		IsActive:    true,
	}
	if err := s.db.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *HabitService) List(userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	err := s.db.Where("user_id = ?", userID).Order("created_at asc").Find(&habits).Error
	return habits, err
}

// getOwned loads the habit only when it belongs to userID; anything else is a
// plain not-found.
func (s *HabitService) getOwned(habitID, userID uint) (*models.Habit, error) {
	var habit models.Habit
	err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

type HabitUpdate struct {
	Name        *string
	Description *string
	Category    *string
	TargetCount *int
	Unit        *string
	Icon        *string
	IsActive    *bool
}

// Update applies partial field changes. Pausing via IsActive never touches the
// streak or the completion log.
func (s *HabitService) Update(habitID, userID uint, upd HabitUpdate) (*models.Habit, error) {
	habit, err := s.getOwned(habitID, userID)
	if err != nil {
		return nil, err
	}

	if upd.TargetCount != nil && *upd.TargetCount < 1 {
		return nil, fmt.Errorf("%w: targetCount must be at least 1", ErrValidation)
	}
	if upd.Name != nil {
		habit.Name = *upd.Name
	}
	if upd.Description != nil {
		habit.Description = *upd.Description
	}
	if upd.Category != nil {
		habit.Category = *upd.Category
	}
	if upd.TargetCount != nil {
		habit.TargetCount = *upd.TargetCount
	}
	if upd.Unit != nil {
		habit.Unit = *upd.Unit
	}
	if upd.Icon != nil {
		habit.Icon = *upd.Icon
	}
	if upd.IsActive != nil {
		habit.IsActive = *upd.IsActive
	}

	if err := s.db.Save(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

// Delete removes the habit and its completion entries.
func (s *HabitService) Delete(habitID, userID uint) error {
	habit, err := s.getOwned(habitID, userID)
	if err != nil {
		return err
	}
	if err := s.db.Where("habit_id = ?", habit.ID).Delete(&models.HabitEntry{}).Error; err != nil {
		return err
	}
	return s.db.Delete(habit).Error
}

// RecordEntry upserts the completion entry for (habit, local calendar day) and
// recomputes the habit's streak from the transition it caused.
func (s *HabitService) RecordEntry(userID, habitID uint, day time.Time, completed bool, count int) (*models.HabitEntry, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative", ErrValidation)
	}
	habit, err := s.getOwned(habitID, userID)
	if err != nil {
		return nil, err
	}

	if day.IsZero() {
		day = time.Now()
	}
	start := dayStartLocal(day)
	end := start.Add(24 * time.Hour)

	var prev models.HabitEntry
	prevCompleted := false
	err = s.db.Where("habit_id = ? AND date >= ? AND date < ?", habitID, start, end).First(&prev).Error
	if err == nil {
		prevCompleted = prev.Completed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := models.HabitEntry{
		HabitID:   habitID,
		UserID:    userID,
		Date:      start,
		Completed: completed,
		Count:     count,
	}
	err = s.db.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, start, end).
		Assign(map[string]interface{}{"completed": completed, "count": count}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}

	if err := s.applyStreak(habit, start, prevCompleted, completed); err != nil {
		return nil, err
	}
	return &entry, nil
}

// applyStreak is the read-modify-write over the single Habit row.
//
// Rules: completing the day exactly one frequency period after the last
// completed day extends the streak; a larger gap restarts it at 1; re-checking
// the already-recorded day changes nothing; un-checking decrements with a
// floor of zero. The longest streak only ever grows, and lastCompletedDate
// only ever moves forward: backfilling a day at or before it records the
// entry but leaves the counter alone.
func (s *HabitService) applyStreak(habit *models.Habit, day time.Time, prevCompleted, completed bool) error {
	oldLongest := habit.StreakLongest

	switch {
	case completed && !prevCompleted:
		last := habit.LastCompletedDate
		switch {
		case last == nil:
			habit.StreakCurrent = 1
		case !day.After(dayStartLocal(*last)):
			// backfill at or before the last completed day
		case !day.After(nextDueDate(*last, habit.Frequency)):
			habit.StreakCurrent++
		default:
			habit.StreakCurrent = 1
		}
	case !completed && prevCompleted:
		if habit.StreakCurrent > 0 {
			habit.StreakCurrent--
		}
	}

	if habit.StreakCurrent > habit.StreakLongest {
		habit.StreakLongest = habit.StreakCurrent
	}
	if completed && (habit.LastCompletedDate == nil || day.After(*habit.LastCompletedDate)) {
		d := day
		habit.LastCompletedDate = &d
	}

	if err := s.db.Save(habit).Error; err != nil {
		return err
	}

	if habit.StreakLongest > oldLongest && habit.StreakLongest >= 3 {
		EmitAlert(habit.UserID, "streak",
			fmt.Sprintf("New longest streak for %q: %d", habit.Name, habit.StreakLongest))
	}
	return nil
}

// nextDueDate is the last day on which completing still extends the streak.
func nextDueDate(last time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyWeekly:
		return last.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return last.AddDate(0, 1, 0)
	default:
		return last.AddDate(0, 0, 1)
	}
}

func (s *HabitService) ListEntries(userID uint, habitID uint, startDate, endDate *time.Time) ([]models.HabitEntry, error) {
	q := s.db.Where("user_id = ?", userID)
	if habitID != 0 {
		q = q.Where("habit_id = ?", habitID)
	}
	if startDate != nil {
		q = q.Where("date >= ?", dayStartLocal(*startDate))
	}
	if endDate != nil {
		q = q.Where("date <= ?", dayEnd(*endDate))
	}

	var entries []models.HabitEntry
	err := q.Order("date desc").Find(&entries).Error
	return entries, err
}

type HabitStats struct {
	TotalHabits       int     `json:"totalHabits"`
	ActiveHabits      int     `json:"activeHabits"`
	CompletedThisWeek int64   `json:"completedThisWeek"`
	LongestStreak     int     `json:"longestStreak"`
	CompletionRate    float64 `json:"completionRate"`
}

// Stats reports the last 7 days. Expected completions per active habit:
// 7 for daily, 1 for weekly or monthly.
func (s *HabitService) Stats(userID uint) (*HabitStats, error) {
	var habits []models.Habit
	if err := s.db.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return nil, err
	}

	out := &HabitStats{TotalHabits: len(habits)}
	expected := 0
	for _, h := range habits {
		if h.StreakLongest > out.LongestStreak {
			out.LongestStreak = h.StreakLongest
		}
		if !h.IsActive {
			continue
		}
		out.ActiveHabits++
		if h.Frequency == models.FrequencyDaily {
			expected += 7
		} else {
			expected++
		}
	}

	weekStart := dayStartLocal(time.Now()).AddDate(0, 0, -6)
	if err := s.db.Model(&models.HabitEntry{}).
		Where("user_id = ? AND completed = ? AND date >= ?", userID, true, weekStart).
		Count(&out.CompletedThisWeek).Error; err != nil {
		return nil, err
	}

	if expected > 0 {
		rate := float64(out.CompletedThisWeek) / float64(expected)
		if rate > 1 {
			rate = 1
		}
		out.CompletionRate = round2(rate)
	}
	return out, nil
}
