// ABOUTME: Calendar event repository over the KV store.
// ABOUTME: Owns the calendar_events key; mutations persist the whole collection.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"coachcal/internal/models"
)

// EventRepository is the single source of truth for calendar events. The
// full collection is serialized as one JSON array under EventsKey; every
// successful mutation persists the collection and notifies subscribers.
//
// A failed persist leaves the in-memory collection unchanged and returns
// the error, so callers can tell a durable write from a dropped one.
type EventRepository struct {
	kv KV

	mu        sync.RWMutex
	events    []models.CalendarEvent
	observers []func()
}

// NewEventRepository loads the stored collection from the KV store.
func NewEventRepository(kv KV) (*EventRepository, error) {
	r := &EventRepository{kv: kv}

	data, err := kv.Get(EventsKey)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.events); err != nil {
			return nil, fmt.Errorf("decode events: %w", err)
		}
	}
	return r, nil
}

// Subscribe registers fn to run after every successful mutation. Used by
// views that need to refresh when the calendar changes.
func (r *EventRepository) Subscribe(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Upsert inserts the event, or fully replaces the stored record when one
// with the same id exists. Safe to call repeatedly with the same event.
func (r *EventRepository) Upsert(e *models.CalendarEvent) error {
	r.mu.Lock()

	next := make([]models.CalendarEvent, len(r.events))
	copy(next, r.events)

	replaced := false
	for i := range next {
		if next[i].ID == e.ID {
			next[i] = *e
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, *e)
	}

	err := r.commit(next)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// GetAll returns every stored event. Order is the repository's own and
// callers must not rely on it.
func (r *EventRepository) GetAll() []models.CalendarEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CalendarEvent, len(r.events))
	copy(out, r.events)
	return out
}

// GetByAthlete returns all events whose athlete set contains the given id.
func (r *EventRepository) GetByAthlete(athleteID string) []models.CalendarEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.CalendarEvent
	for _, e := range r.events {
		if e.HasAthlete(athleteID) {
			out = append(out, e)
		}
	}
	return out
}

// DeleteMany removes all events whose id is in ids. Ids with no stored
// event are silently ignored.
func (r *EventRepository) DeleteMany(ids []string) error {
	r.mu.Lock()
	err := r.commit(r.withoutLocked(ids))
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// ReplaceForTemplate removes the events in toDelete and inserts toInsert
// as a single persisted write. This is the batch the reprogramming flow
// uses so a reader never observes the deleted-but-not-recreated state on
// disk.
func (r *EventRepository) ReplaceForTemplate(toDelete []string, toInsert []*models.CalendarEvent) error {
	r.mu.Lock()
	next := r.withoutLocked(toDelete)
	for _, e := range toInsert {
		next = append(next, *e)
	}
	err := r.commit(next)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// withoutLocked returns a copy of the collection without the given ids.
func (r *EventRepository) withoutLocked(ids []string) []models.CalendarEvent {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	next := make([]models.CalendarEvent, 0, len(r.events))
	for _, e := range r.events {
		if !drop[e.ID] {
			next = append(next, e)
		}
	}
	return next
}

// commit persists the candidate collection and, on success, makes it the
// in-memory state. Caller holds the write lock.
func (r *EventRepository) commit(next []models.CalendarEvent) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := r.kv.Set(EventsKey, data); err != nil {
		return fmt.Errorf("persist events: %w", err)
	}

	r.events = next
	return nil
}

// notify runs the observers outside the lock so they can read back through
// the repository.
func (r *EventRepository) notify() {
	r.mu.RLock()
	observers := make([]func(), len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}
