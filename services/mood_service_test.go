package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMoodRecordForDay_UpsertsSameDay(t *testing.T) {
	svc := NewMoodService(newTestDB(t))
	d := day(t, "2026-03-10")

	first, err := svc.RecordForDay(1, MoodInput{Mood: 2, Note: "rough morning", Date: d})
	require.NoError(t, err)

	second, err := svc.RecordForDay(1, MoodInput{Mood: 4, Note: "better after a walk", Date: d})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	entries, err := svc.List(1, nil, nil, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 4, entries[0].Mood)
	require.Equal(t, "better after a walk", entries[0].Note)
}

func TestMoodRecordForDay_SeparateDaysAndUsers(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	_, err := svc.RecordForDay(1, MoodInput{Mood: 3, Date: day(t, "2026-03-10")})
	require.NoError(t, err)
	_, err = svc.RecordForDay(1, MoodInput{Mood: 5, Date: day(t, "2026-03-11")})
	require.NoError(t, err)
	_, err = svc.RecordForDay(2, MoodInput{Mood: 1, Date: day(t, "2026-03-10")})
	require.NoError(t, err)

	mine, err := svc.List(1, nil, nil, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	theirs, err := svc.List(2, nil, nil, 0)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	require.Equal(t, 1, theirs[0].Mood)
}

func TestMoodRecordForDay_Validation(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	_, err := svc.RecordForDay(1, MoodInput{Mood: 0})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordForDay(1, MoodInput{Mood: 6})
	require.ErrorIs(t, err, ErrValidation)

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.RecordForDay(1, MoodInput{Mood: 3, Note: string(long)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestMoodStats_EmptyWindow(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	stats, err := svc.Stats(1, 30)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalEntries)
	require.Equal(t, 0.0, stats.AverageMood)
	require.Equal(t, "stable", stats.Trend)
	require.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.MoodDistribution)
}

// seedMoodDays writes one entry per day ending today, oldest first.
func seedMoodDays(t *testing.T, svc *MoodService, moods []int) {
	t.Helper()
	start := time.Now().AddDate(0, 0, -(len(moods) - 1))
	for i, m := range moods {
		_, err := svc.RecordForDay(1, MoodInput{Mood: m, Date: start.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
}

func TestMoodStats_TrendImproving(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	// oldest 7 average 3.0, newest 7 average 3.57: diff well above 0.3
	seedMoodDays(t, svc, []int{3, 3, 3, 3, 3, 3, 3, 4, 3, 4, 3, 4, 3, 4})

	stats, err := svc.Stats(1, 30)
	require.NoError(t, err)
	require.Equal(t, 14, stats.TotalEntries)
	require.Equal(t, "improving", stats.Trend)
}

func TestMoodStats_TrendStrictThreshold(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	// diff of 2/7 (~0.29) must not count as improving
	seedMoodDays(t, svc, []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4})

	stats, err := svc.Stats(1, 30)
	require.NoError(t, err)
	require.Equal(t, "stable", stats.Trend)
}

func TestMoodStats_TrendDeclining(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	seedMoodDays(t, svc, []int{4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 3})

	stats, err := svc.Stats(1, 30)
	require.NoError(t, err)
	require.Equal(t, "declining", stats.Trend)
}

func TestMoodStats_TooFewEntriesForTrend(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	seedMoodDays(t, svc, []int{1, 1, 1, 5, 5, 5})

	stats, err := svc.Stats(1, 30)
	require.NoError(t, err)
	require.Equal(t, "stable", stats.Trend)
	require.Equal(t, 3.0, stats.AverageMood)
	require.Equal(t, 3, stats.MoodDistribution[1])
	require.Equal(t, 3, stats.MoodDistribution[5])
}
