// ABOUTME: Read-only queries over the calendar event repository.
// ABOUTME: Draws the now/future boundary inclusively and consistently.
package schedule

import (
	"sort"
	"time"

	"coachcal/internal/models"
	"coachcal/internal/store"
)

// DefaultUpcomingLimit caps UpcomingForAthlete when no limit is given.
const DefaultUpcomingLimit = 12

// Service answers schedule queries and performs reprogramming. It has no
// persisted state of its own; everything goes through the event repository.
type Service struct {
	repo *store.EventRepository
	now  func() time.Time
}

// NewService constructs a Service over the given repository.
func NewService(repo *store.EventRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// UpcomingForAthlete lists the athlete's workout events whose start is at
// or after now, earliest first. templateID, when non-empty, restricts the
// list to one plan. limit <= 0 means DefaultUpcomingLimit.
//
// An event starting exactly now counts as future: listing a session in its
// last second is cheaper than silently dropping one about to start.
func (s *Service) UpcomingForAthlete(athleteID string, limit int, templateID string) []models.CalendarEvent {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	now := s.now()

	var out []models.CalendarEvent
	for _, e := range s.repo.GetByAthlete(athleteID) {
		if !s.isFutureWorkout(e, now, templateID) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FutureEventIDs returns the ids of the athlete's not-yet-started workout
// events for the given plan. This is the deletion manifest for
// reprogramming; no limit applies.
func (s *Service) FutureEventIDs(athleteID, templateID string) []string {
	now := s.now()

	var ids []string
	for _, e := range s.repo.GetByAthlete(athleteID) {
		if !s.isFutureWorkout(e, now, templateID) {
			continue
		}
		ids = append(ids, e.ID)
	}
	return ids
}

// isFutureWorkout applies the shared filter: workout type, inclusive future
// boundary, optional template match.
func (s *Service) isFutureWorkout(e models.CalendarEvent, now time.Time, templateID string) bool {
	if e.Type != models.EventTypeWorkout {
		return false
	}
	if e.Start.Before(now) {
		return false
	}
	if templateID != "" && e.WorkoutTemplateID != templateID {
		return false
	}
	return true
}
