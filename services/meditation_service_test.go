package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeditation_StartAndComplete(t *testing.T) {
	svc := NewMeditationService(newTestDB(t))

	before := 2
	session, err := svc.Start(1, SessionInput{Type: "breathing", Duration: 10, MoodBefore: &before})
	require.NoError(t, err)
	require.False(t, session.Completed)

	after := 4
	done, err := svc.Complete(session.ID, 1, 8, &after)
	require.NoError(t, err)
	require.True(t, done.Completed)
	require.Equal(t, 8, done.CompletedDuration)

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalSessions)
	require.Equal(t, 1, stats.CompletedSessions)
	require.Equal(t, 8, stats.TotalMinutes)
	require.Equal(t, 2.0, stats.AverageMoodDelta)
}

func TestMeditation_Validation(t *testing.T) {
	svc := NewMeditationService(newTestDB(t))

	_, err := svc.Start(1, SessionInput{Type: "yoga", Duration: 10})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Start(1, SessionInput{Type: "timer", Duration: 0})
	require.ErrorIs(t, err, ErrValidation)
}

func TestMeditation_CompleteOwnership(t *testing.T) {
	svc := NewMeditationService(newTestDB(t))

	session, err := svc.Start(1, SessionInput{Type: "timer", Duration: 5})
	require.NoError(t, err)

	_, err = svc.Complete(session.ID, 2, 5, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMeditationStats_Empty(t *testing.T) {
	svc := NewMeditationService(newTestDB(t))

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalSessions)
	require.Equal(t, 0.0, stats.AverageMoodDelta)
}
