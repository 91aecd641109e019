// ABOUTME: Key-value storage abstraction for coachcal collections.
// ABOUTME: Each collection is one JSON blob under a fixed key.
package store

// Storage keys. Each collection occupies its own key in the underlying
// store; the event repository owns calendar_events exclusively.
const (
	EventsKey   = "calendar_events"
	PlansKey    = "workout_plans"
	AthletesKey = "athletes"
)

// KV is the persistent key-value store the repositories write through.
// Get returns (nil, nil) for a missing key. Set overwrites the full value.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Close() error
}
