package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vijay-C-S/zenzone-sub001/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

type GoalInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	TargetDate  time.Time
	Milestones  []string
}

func (s *GoalService) Create(userID uint, in GoalInput) (*models.Goal, error) {
	switch in.Priority {
	case "low", "medium", "high":
	case "":
		in.Priority = "medium"
	default:
		return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Priority:    in.Priority,
		Status:      models.GoalActive,
		TargetDate:  in.TargetDate,
	}
	for _, title := range in.Milestones {
		goal.Milestones = append(goal.Milestones, models.GoalMilestone{Title: title})
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(userID uint, status string) ([]models.Goal, error) {
	q := s.db.Preload("Milestones").Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var goals []models.Goal
	err := q.Order("created_at asc").Find(&goals).Error
	return goals, err
}

func (s *GoalService) Get(goalID, userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Preload("Milestones").
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// allowedTransitions is the whole status machine: pause/resume, complete,
// reopen. Nothing reaches cancelled and nothing leaves it.
var allowedTransitions = map[string][]string{
	models.GoalActive:    {models.GoalPaused, models.GoalCompleted},
	models.GoalPaused:    {models.GoalActive},
	models.GoalCompleted: {models.GoalActive},
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type GoalUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	TargetDate  *time.Time
	Progress    *int
	Status      *string
}

// Update applies partial changes. Progress is a direct 0-100 overwrite and does
// not move status; reaching 100 never auto-completes a goal. Completing is an
// explicit status change and is accepted at any progress value.
func (s *GoalService) Update(goalID, userID uint, upd GoalUpdate) (*models.Goal, error) {
	goal, err := s.Get(goalID, userID)
	if err != nil {
		return nil, err
	}

	if upd.Progress != nil {
		if *upd.Progress < 0 || *upd.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
		}
		goal.Progress = *upd.Progress
	}

	completedNow := false
	if upd.Status != nil && *upd.Status != goal.Status {
		if !transitionAllowed(goal.Status, *upd.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, goal.Status, *upd.Status)
		}
		switch *upd.Status {
		case models.GoalCompleted:
			now := time.Now()
			goal.CompletedAt = &now
			completedNow = true
		case models.GoalActive:
			if goal.Status == models.GoalCompleted {
				goal.CompletedAt = nil
			}
		}
		goal.Status = *upd.Status
	}

	if upd.Title != nil {
		goal.Title = *upd.Title
	}
	if upd.Description != nil {
		goal.Description = *upd.Description
	}
	if upd.Category != nil {
		goal.Category = *upd.Category
	}
	if upd.Priority != nil {
		goal.Priority = *upd.Priority
	}
	if upd.TargetDate != nil {
		goal.TargetDate = *upd.TargetDate
	}

	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}

	if completedNow {
		EmitAlert(userID, "goal", fmt.Sprintf("Goal completed: %s", goal.Title))
	}
	return goal, nil
}

// ToggleMilestone flips one milestone's flag. Progress is left alone; the two
// fields are independent and any derivation happens client-side.
func (s *GoalService) ToggleMilestone(goalID, userID, milestoneID uint, completed bool) (*models.Goal, error) {
	goal, err := s.Get(goalID, userID)
	if err != nil {
		return nil, err
	}

	var ms models.GoalMilestone
	err = s.db.Where("id = ? AND goal_id = ?", milestoneID, goal.ID).First(&ms).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	ms.Completed = completed
	if err := s.db.Save(&ms).Error; err != nil {
		return nil, err
	}
	return s.Get(goalID, userID)
}

func (s *GoalService) Delete(goalID, userID uint) error {
	goal, err := s.Get(goalID, userID)
	if err != nil {
		return err
	}
	if err := s.db.Where("goal_id = ?", goal.ID).Delete(&models.GoalMilestone{}).Error; err != nil {
		return err
	}
	return s.db.Delete(goal).Error
}

type GoalStats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	Completed       int     `json:"completed"`
	Paused          int     `json:"paused"`
	Cancelled       int     `json:"cancelled"`
	AverageProgress float64 `json:"averageProgress"` // over active goals
}

func (s *GoalService) Stats(userID uint) (*GoalStats, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, err
	}

	out := &GoalStats{Total: len(goals)}
	var activeSum float64
	for _, g := range goals {
		switch g.Status {
		case models.GoalActive:
			out.Active++
			activeSum += float64(g.Progress)
		case models.GoalCompleted:
			out.Completed++
		case models.GoalPaused:
			out.Paused++
		case models.GoalCancelled:
			out.Cancelled++
		}
	}
	out.AverageProgress = avg(activeSum, out.Active)
	return out, nil
}
