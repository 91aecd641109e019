// ABOUTME: Tests for future-event queries.
// ABOUTME: Covers the inclusive now boundary, template filter, and limit.
package schedule

import (
	"testing"
	"time"

	"coachcal/internal/models"
	"coachcal/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.EventRepository) {
	t.Helper()
	repo, err := store.NewEventRepository(store.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewEventRepository failed: %v", err)
	}
	return NewService(repo), repo
}

func addEvent(t *testing.T, repo *store.EventRepository, title, athleteID, templateID string, start time.Time) *models.CalendarEvent {
	t.Helper()
	e := models.NewWorkoutEvent(title, start, start.Add(time.Hour), "coach-1", athleteID, templateID)
	if err := repo.Upsert(e); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	return e
}

func TestUpcomingExcludesPast(t *testing.T) {
	svc, repo := newTestService(t)
	now := time.Now()

	addEvent(t, repo, "yesterday", "ath-1", "tpl-1", now.Add(-24*time.Hour))
	future := addEvent(t, repo, "tomorrow", "ath-1", "tpl-1", now.Add(24*time.Hour))

	got := svc.UpcomingForAthlete("ath-1", 0, "")
	if len(got) != 1 {
		t.Fatalf("Expected 1 upcoming event, got %d", len(got))
	}
	if got[0].ID != future.ID {
		t.Errorf("Expected future event, got %q", got[0].Title)
	}
}

func TestUpcomingBoundaryIsInclusive(t *testing.T) {
	svc, repo := newTestService(t)

	at := time.Now().Add(time.Hour)
	e := addEvent(t, repo, "on the dot", "ath-1", "tpl-1", at)
	svc.now = func() time.Time { return at }

	got := svc.UpcomingForAthlete("ath-1", 0, "")
	if len(got) != 1 || got[0].ID != e.ID {
		t.Errorf("Event starting exactly now must be listed as future, got %d events", len(got))
	}

	ids := svc.FutureEventIDs("ath-1", "tpl-1")
	if len(ids) != 1 || ids[0] != e.ID {
		t.Errorf("Event starting exactly now must be in the manifest, got %v", ids)
	}
}

func TestUpcomingSortedAndLimited(t *testing.T) {
	svc, repo := newTestService(t)
	now := time.Now()

	// Insert out of order.
	third := addEvent(t, repo, "c", "ath-1", "tpl-1", now.Add(72*time.Hour))
	first := addEvent(t, repo, "a", "ath-1", "tpl-1", now.Add(24*time.Hour))
	second := addEvent(t, repo, "b", "ath-1", "tpl-1", now.Add(48*time.Hour))

	got := svc.UpcomingForAthlete("ath-1", 0, "")
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	for i, want := range []*models.CalendarEvent{first, second, third} {
		if got[i].ID != want.ID {
			t.Errorf("Position %d: got %q, want %q", i, got[i].Title, want.Title)
		}
	}

	limited := svc.UpcomingForAthlete("ath-1", 2, "")
	if len(limited) != 2 {
		t.Fatalf("Expected limit of 2, got %d", len(limited))
	}
	if limited[0].ID != first.ID || limited[1].ID != second.ID {
		t.Errorf("Limit must keep the earliest events")
	}
}

func TestUpcomingDefaultLimit(t *testing.T) {
	svc, repo := newTestService(t)
	now := time.Now()

	for i := 0; i < DefaultUpcomingLimit+5; i++ {
		addEvent(t, repo, "s", "ath-1", "tpl-1", now.Add(time.Duration(i+1)*time.Hour))
	}

	got := svc.UpcomingForAthlete("ath-1", 0, "")
	if len(got) != DefaultUpcomingLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultUpcomingLimit, len(got))
	}
}

func TestUpcomingTemplateFilter(t *testing.T) {
	svc, repo := newTestService(t)
	now := time.Now()

	a := addEvent(t, repo, "plan a", "ath-1", "tpl-a", now.Add(24*time.Hour))
	addEvent(t, repo, "plan b", "ath-1", "tpl-b", now.Add(25*time.Hour))

	got := svc.UpcomingForAthlete("ath-1", 0, "tpl-a")
	if len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("Template filter failed: got %d events", len(got))
	}
}

func TestFutureEventIDsNeverIncludePast(t *testing.T) {
	svc, repo := newTestService(t)
	now := time.Now()

	past := addEvent(t, repo, "done", "ath-1", "tpl-1", now.Add(-time.Hour))
	future := addEvent(t, repo, "todo", "ath-1", "tpl-1", now.Add(time.Hour))

	ids := svc.FutureEventIDs("ath-1", "tpl-1")
	if len(ids) != 1 {
		t.Fatalf("Expected 1 id, got %d", len(ids))
	}
	if ids[0] == past.ID {
		t.Error("Manifest must never contain a past event")
	}
	if ids[0] != future.ID {
		t.Errorf("Expected %s, got %s", future.ID, ids[0])
	}
}

func TestFutureEventIDsEmptyForUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	if ids := svc.FutureEventIDs("nobody", "no-plan"); len(ids) != 0 {
		t.Errorf("Expected empty manifest, got %v", ids)
	}
}
