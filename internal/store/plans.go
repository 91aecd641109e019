// ABOUTME: Workout plan repository over the KV store.
// ABOUTME: Plans live as one JSON array under the workout_plans key.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"coachcal/internal/models"
)

// ErrNotFound is returned when an id (or id prefix) matches no record.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when an id prefix matches more than one record.
var ErrAmbiguous = errors.New("ambiguous id prefix")

// PlanRepository stores the coach's workout plans.
type PlanRepository struct {
	kv KV

	mu    sync.RWMutex
	plans []models.WorkoutPlan
}

// NewPlanRepository loads the stored plans from the KV store.
func NewPlanRepository(kv KV) (*PlanRepository, error) {
	r := &PlanRepository{kv: kv}

	data, err := kv.Get(PlansKey)
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.plans); err != nil {
			return nil, fmt.Errorf("decode plans: %w", err)
		}
	}
	return r, nil
}

// Save inserts or replaces the plan by id.
func (r *PlanRepository) Save(p *models.WorkoutPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.WorkoutPlan, len(r.plans))
	copy(next, r.plans)

	replaced := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, *p)
	}

	return r.persist(next)
}

// List returns all stored plans.
func (r *PlanRepository) List() []models.WorkoutPlan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.WorkoutPlan, len(r.plans))
	copy(out, r.plans)
	return out
}

// Get returns the plan whose id matches idOrPrefix exactly or by prefix.
func (r *PlanRepository) Get(idOrPrefix string) (*models.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *models.WorkoutPlan
	for i := range r.plans {
		if strings.HasPrefix(r.plans[i].ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
			}
			match = &r.plans[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("plan %s: %w", idOrPrefix, ErrNotFound)
	}
	p := *match
	return &p, nil
}

// Delete removes the plan matching idOrPrefix.
func (r *PlanRepository) Delete(idOrPrefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.plans {
		if strings.HasPrefix(r.plans[i].ID, idOrPrefix) {
			if idx >= 0 {
				return fmt.Errorf("%w: %s", ErrAmbiguous, idOrPrefix)
			}
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("plan %s: %w", idOrPrefix, ErrNotFound)
	}

	next := make([]models.WorkoutPlan, 0, len(r.plans)-1)
	next = append(next, r.plans[:idx]...)
	next = append(next, r.plans[idx+1:]...)
	return r.persist(next)
}

func (r *PlanRepository) persist(next []models.WorkoutPlan) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode plans: %w", err)
	}
	if err := r.kv.Set(PlansKey, data); err != nil {
		return fmt.Errorf("persist plans: %w", err)
	}
	r.plans = next
	return nil
}
