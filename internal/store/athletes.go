// ABOUTME: Athlete roster repository over the KV store.
// ABOUTME: Athletes live as one JSON array under the athletes key.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"coachcal/internal/models"
)

// AthleteRepository stores the coach's athlete roster.
type AthleteRepository struct {
	kv KV

	mu       sync.RWMutex
	athletes []models.Athlete
}

// NewAthleteRepository loads the stored roster from the KV store.
func NewAthleteRepository(kv KV) (*AthleteRepository, error) {
	r := &AthleteRepository{kv: kv}

	data, err := kv.Get(AthletesKey)
	if err != nil {
		return nil, fmt.Errorf("load athletes: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.athletes); err != nil {
			return nil, fmt.Errorf("decode athletes: %w", err)
		}
	}
	return r, nil
}

// Save inserts or replaces the athlete by id.
func (r *AthleteRepository) Save(a *models.Athlete) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.Athlete, len(r.athletes))
	copy(next, r.athletes)

	replaced := false
	for i := range next {
		if next[i].ID == a.ID {
			next[i] = *a
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, *a)
	}

	return r.persist(next)
}

// List returns all stored athletes.
func (r *AthleteRepository) List() []models.Athlete {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Athlete, len(r.athletes))
	copy(out, r.athletes)
	return out
}

// Get returns the athlete whose id matches idOrPrefix exactly or by prefix.
func (r *AthleteRepository) Get(idOrPrefix string) (*models.Athlete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *models.Athlete
	for i := range r.athletes {
		if strings.HasPrefix(r.athletes[i].ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
			}
			match = &r.athletes[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("athlete %s: %w", idOrPrefix, ErrNotFound)
	}
	a := *match
	return &a, nil
}

// Delete removes the athlete matching idOrPrefix.
func (r *AthleteRepository) Delete(idOrPrefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.athletes {
		if strings.HasPrefix(r.athletes[i].ID, idOrPrefix) {
			if idx >= 0 {
				return fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
			}
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("athlete %s: %w", idOrPrefix, ErrNotFound)
	}

	next := make([]models.Athlete, 0, len(r.athletes)-1)
	next = append(next, r.athletes[:idx]...)
	next = append(next, r.athletes[idx+1:]...)
	return r.persist(next)
}

func (r *AthleteRepository) persist(next []models.Athlete) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode athletes: %w", err)
	}
	if err := r.kv.Set(AthletesKey, data); err != nil {
		return fmt.Errorf("persist athletes: %w", err)
	}
	r.athletes = next
	return nil
}
