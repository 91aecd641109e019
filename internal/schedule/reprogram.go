// ABOUTME: Reprogramming of an athlete's future sessions for one plan.
// ABOUTME: Builds the full new schedule before any deletion, then swaps in one write.
package schedule

import (
	"time"

	"coachcal/internal/models"
	"coachcal/internal/recur"
)

// Request describes the replacement schedule for one athlete and one plan.
type Request struct {
	CoachID    string
	AthleteID  string
	TemplateID string
	Title      string

	StartDate   time.Time
	Weekdays    recur.WeekdaySet
	Weeks       int
	Clock       string // "HH:MM", defaulted by the combiner
	DurationMin int
}

// Result reports what a reprogram (or assign) changed, for user feedback.
type Result struct {
	Deleted int
	Created int
}

// Reprogram replaces the athlete's future sessions for the plan with a
// freshly expanded schedule. The new event list is built completely before
// anything is removed, and the delete+insert lands as a single repository
// write, so there is no window where the old future sessions are gone and
// the new ones are not yet stored.
//
// Events whose start has already passed are never inspected or deleted,
// whatever the request contains. An empty weekday set is valid input: it
// clears the plan's future sessions and creates nothing.
//
// On a persistence error the counts are still returned so the caller can
// report them as unconfirmed.
func (s *Service) Reprogram(req Request) (Result, error) {
	manifest := s.FutureEventIDs(req.AthleteID, req.TemplateID)
	created := s.buildEvents(req)

	res := Result{Deleted: len(manifest), Created: len(created)}

	if len(manifest) == 0 && len(created) == 0 {
		return res, nil
	}
	if err := s.repo.ReplaceForTemplate(manifest, created); err != nil {
		return res, err
	}
	return res, nil
}

// Assign additively creates sessions for the plan without touching any
// existing event.
func (s *Service) Assign(req Request) (Result, error) {
	created := s.buildEvents(req)

	var res Result
	for _, e := range created {
		if err := s.repo.Upsert(e); err != nil {
			return res, err
		}
		res.Created++
	}
	return res, nil
}

// buildEvents expands the recurrence and constructs the full event list,
// one single-athlete event per occurrence.
func (s *Service) buildEvents(req Request) []*models.CalendarEvent {
	dates := recur.Expand(req.StartDate, req.Weekdays, req.Weeks)

	events := make([]*models.CalendarEvent, 0, len(dates))
	for _, d := range dates {
		start, end := recur.Combine(d, req.Clock, req.DurationMin)
		events = append(events, models.NewWorkoutEvent(
			req.Title, start, end, req.CoachID, req.AthleteID, req.TemplateID))
	}
	return events
}
