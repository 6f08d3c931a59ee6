package services

import (
	"context"
	"testing"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"github.com/stretchr/testify/require"
)

func TestAnalyticsSummary_Empty(t *testing.T) {
	svc := NewAnalyticsService(newTestDB(t))

	from := day(t, "2026-03-01")
	to := day(t, "2026-03-07")

	out, err := svc.Summary(context.Background(), 1, from, to, false)
	require.NoError(t, err)
	require.Equal(t, 0, out.MoodEntries)
	require.Equal(t, 0.0, out.AverageMood)
	require.EqualValues(t, 0, out.HabitCompletions)
	require.Equal(t, 0.0, out.HabitCompletionRate)
	require.EqualValues(t, 0, out.ActiveGoals)
}

func TestAnalyticsSummary_FoldsAllDomains(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db)

	moodSvc := NewMoodService(db)
	habitSvc := NewHabitService(db)
	goalSvc := NewGoalService(db)
	medSvc := NewMeditationService(db)

	from := day(t, "2026-03-02")
	to := day(t, "2026-03-08")

	_, err := moodSvc.RecordForDay(1, MoodInput{Mood: 3, Date: day(t, "2026-03-02")})
	require.NoError(t, err)
	_, err = moodSvc.RecordForDay(1, MoodInput{Mood: 5, Date: day(t, "2026-03-04")})
	require.NoError(t, err)

	habit := newDailyHabit(t, habitSvc, 1)
	_, err = habitSvc.RecordEntry(1, habit.ID, day(t, "2026-03-02"), true, 1)
	require.NoError(t, err)
	_, err = habitSvc.RecordEntry(1, habit.ID, day(t, "2026-03-03"), true, 1)
	require.NoError(t, err)

	goal := newGoal(t, goalSvc, 1)
	_, err = goalSvc.Update(goal.ID, 1, GoalUpdate{Progress: intPtr(30)})
	require.NoError(t, err)

	session, err := medSvc.Start(1, SessionInput{Type: "timer", Duration: 10})
	require.NoError(t, err)
	// pin the session inside the window
	require.NoError(t, db.Model(&models.MeditationSession{}).
		Where("id = ?", session.ID).
		Update("session_date", day(t, "2026-03-03").Add(9*time.Hour)).Error)
	_, err = medSvc.Complete(session.ID, 1, 10, nil)
	require.NoError(t, err)

	out, err := svc.Summary(context.Background(), 1, from, to, true)
	require.NoError(t, err)

	require.Equal(t, 2, out.MoodEntries)
	require.Equal(t, 4.0, out.AverageMood)
	require.EqualValues(t, 2, out.HabitCompletions)
	// one daily habit over 7 days expects 7 completions
	require.Equal(t, round2(2.0/7.0), out.HabitCompletionRate)
	require.Equal(t, 10, out.MeditationMinutes)
	require.EqualValues(t, 1, out.ActiveGoals)
	require.Equal(t, 30.0, out.AverageGoalProgress)

	require.Len(t, out.Days, 7)
	require.Equal(t, "2026-03-02", out.Days[0].Date)
	require.Equal(t, 3, out.Days[0].Mood)
	require.Equal(t, 1, out.Days[0].HabitsCompleted)
	require.Equal(t, 10, out.Days[1].MeditationMinutes)
}
