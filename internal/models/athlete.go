// ABOUTME: Athlete model for the coach's roster.
// ABOUTME: Athletes are referenced by calendar events via AthleteIDs.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Athlete is one person the coach trains.
type Athlete struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAthlete creates an athlete with a generated id.
func NewAthlete(name string) *Athlete {
	return &Athlete{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithNotes sets freeform notes on the athlete.
func (a *Athlete) WithNotes(notes string) *Athlete {
	a.Notes = notes
	return a
}
