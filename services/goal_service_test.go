package services

import (
	"testing"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"github.com/stretchr/testify/require"
)

func newGoal(t *testing.T, svc *GoalService, userID uint, milestones ...string) *models.Goal {
	t.Helper()
	goal, err := svc.Create(userID, GoalInput{
		Title:      "Run a 10k",
		Category:   "fitness",
		TargetDate: day(t, "2026-09-01"),
		Milestones: milestones,
	})
	require.NoError(t, err)
	return goal
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGoalCreate_Defaults(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1, "Run 3k", "Run 5k")

	require.Equal(t, models.GoalActive, goal.Status)
	require.Equal(t, "medium", goal.Priority)
	require.Equal(t, 0, goal.Progress)
	require.Len(t, goal.Milestones, 2)
	require.Nil(t, goal.CompletedAt)
}

func TestGoalUpdate_ProgressBounds(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1)

	_, err := svc.Update(goal.ID, 1, GoalUpdate{Progress: intPtr(-1)})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(goal.ID, 1, GoalUpdate{Progress: intPtr(101)})
	require.ErrorIs(t, err, ErrValidation)

	updated, err := svc.Update(goal.ID, 1, GoalUpdate{Progress: intPtr(60)})
	require.NoError(t, err)
	require.Equal(t, 60, updated.Progress)
}

func TestGoalUpdate_FullProgressDoesNotAutoComplete(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1)

	updated, err := svc.Update(goal.ID, 1, GoalUpdate{Progress: intPtr(100)})
	require.NoError(t, err)
	require.Equal(t, models.GoalActive, updated.Status)
	require.Nil(t, updated.CompletedAt)
}

func TestGoalTransitions_PauseResumeCompleteReopen(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1)

	paused, err := svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalPaused)})
	require.NoError(t, err)
	require.Equal(t, models.GoalPaused, paused.Status)

	resumed, err := svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalActive)})
	require.NoError(t, err)
	require.Equal(t, models.GoalActive, resumed.Status)

	// completion is accepted at any progress value; the 100% gate is client-side
	completed, err := svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalCompleted)})
	require.NoError(t, err)
	require.Equal(t, models.GoalCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	reopened, err := svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalActive)})
	require.NoError(t, err)
	require.Equal(t, models.GoalActive, reopened.Status)
	require.Nil(t, reopened.CompletedAt)
}

func TestGoalTransitions_Disallowed(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1)

	_, err := svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalCancelled)})
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalPaused)})
	require.NoError(t, err)

	// paused goals must be resumed before completion
	_, err = svc.Update(goal.ID, 1, GoalUpdate{Status: strPtr(models.GoalCompleted)})
	require.ErrorIs(t, err, ErrInvalidTransition)

	// rejected transitions leave the goal untouched
	got, err := svc.Get(goal.ID, 1)
	require.NoError(t, err)
	require.Equal(t, models.GoalPaused, got.Status)
}

func TestGoalMilestoneToggle(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1, "Run 3k", "Run 5k")

	goal, err := svc.ToggleMilestone(goal.ID, 1, goal.Milestones[0].ID, true)
	require.NoError(t, err)
	require.True(t, goal.Milestones[0].Completed)
	require.False(t, goal.Milestones[1].Completed)
	// toggling milestones never moves progress
	require.Equal(t, 0, goal.Progress)

	_, err = svc.ToggleMilestone(goal.ID, 1, 9999, true)
	require.ErrorIs(t, err, ErrNotFound)

	// a milestone belonging to another goal is not reachable through this one
	other := newGoal(t, svc, 1, "Stretch")
	_, err = svc.ToggleMilestone(goal.ID, 1, other.Milestones[0].ID, true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGoal_OwnershipIsNotFound(t *testing.T) {
	svc := NewGoalService(newTestDB(t))
	goal := newGoal(t, svc, 1)

	_, err := svc.Get(goal.ID, 2)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(goal.ID, 2, GoalUpdate{Progress: intPtr(10)})
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(goal.ID, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGoalStats(t *testing.T) {
	svc := NewGoalService(newTestDB(t))

	a := newGoal(t, svc, 1)
	b := newGoal(t, svc, 1)
	c := newGoal(t, svc, 1)

	_, err := svc.Update(a.ID, 1, GoalUpdate{Progress: intPtr(40)})
	require.NoError(t, err)
	_, err = svc.Update(b.ID, 1, GoalUpdate{Progress: intPtr(60)})
	require.NoError(t, err)
	_, err = svc.Update(c.ID, 1, GoalUpdate{Status: strPtr(models.GoalCompleted)})
	require.NoError(t, err)

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Active)
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 50.0, stats.AverageProgress)
}

func TestGoalStats_Empty(t *testing.T) {
	svc := NewGoalService(newTestDB(t))

	stats, err := svc.Stats(1)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Total)
	require.Equal(t, 0.0, stats.AverageProgress)
}
