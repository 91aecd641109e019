// ABOUTME: WorkoutPlan model, a reusable days-by-exercises training template.
// ABOUTME: Plans are referenced by calendar events via WorkoutTemplateID.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutPlan is a reusable workout structure that recurring calendar
// events reference by id.
type WorkoutPlan struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Days        []PlanDay `json:"days,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlanDay is one training day within a plan.
type PlanDay struct {
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises,omitempty"`
}

// PlanExercise is one exercise prescription within a day.
type PlanExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets,omitempty"`
	Reps        string `json:"reps,omitempty"`
	RestSeconds int    `json:"restSeconds,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// NewWorkoutPlan creates a plan with a generated id and current timestamps.
func NewWorkoutPlan(title string) *WorkoutPlan {
	now := time.Now()
	return &WorkoutPlan{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithDescription sets the plan description.
func (p *WorkoutPlan) WithDescription(desc string) *WorkoutPlan {
	p.Description = desc
	return p
}

// WithDays sets the training days.
func (p *WorkoutPlan) WithDays(days []PlanDay) *WorkoutPlan {
	p.Days = days
	return p
}
