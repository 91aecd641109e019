// ABOUTME: CalendarEvent model for scheduled training sessions.
// ABOUTME: Events are generated from a plan's recurrence and owned by one coach.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags the kind of calendar entry. Only workout events are
// produced by the scheduler today; the field leaves room for other kinds.
type EventType string

const EventTypeWorkout EventType = "workout"

// CalendarEvent is one scheduled (or past) training session instance.
// Title is copied from the plan at creation time and is not live-linked:
// renaming the plan later does not rename events already on the calendar.
type CalendarEvent struct {
	ID                string    `json:"id"`
	Type              EventType `json:"type"`
	Title             string    `json:"title"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	AllDay            bool      `json:"allDay"`
	CoachID           string    `json:"coachId"`
	AthleteIDs        []string  `json:"athleteIds"`
	WorkoutTemplateID string    `json:"workoutTemplateId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewWorkoutEvent creates a session event for a single athlete.
func NewWorkoutEvent(title string, start, end time.Time, coachID, athleteID, templateID string) *CalendarEvent {
	now := time.Now()
	return &CalendarEvent{
		ID:                uuid.NewString(),
		Type:              EventTypeWorkout,
		Title:             title,
		Start:             start,
		End:               end,
		AllDay:            false,
		CoachID:           coachID,
		AthleteIDs:        []string{athleteID},
		WorkoutTemplateID: templateID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// HasAthlete reports whether the event applies to the given athlete.
func (e *CalendarEvent) HasAthlete(athleteID string) bool {
	for _, id := range e.AthleteIDs {
		if id == athleteID {
			return true
		}
	}
	return false
}
