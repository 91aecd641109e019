// ABOUTME: Integration tests for coachcal.
// ABOUTME: Tests the full workflow from roster to reprogrammed schedule.
package test

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"coachcal/internal/export"
	"coachcal/internal/ics"
	"coachcal/internal/models"
	"coachcal/internal/recur"
	"coachcal/internal/schedule"
	"coachcal/internal/store"
)

// nextWeekday returns the next occurrence of day strictly after now.
func nextWeekday(day time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func TestFullWorkflow(t *testing.T) {
	kv := store.NewMemoryStore()

	athletes, err := store.NewAthleteRepository(kv)
	if err != nil {
		t.Fatalf("open athlete repo: %v", err)
	}
	plans, err := store.NewPlanRepository(kv)
	if err != nil {
		t.Fatalf("open plan repo: %v", err)
	}
	events, err := store.NewEventRepository(kv)
	if err != nil {
		t.Fatalf("open event repo: %v", err)
	}
	svc := schedule.NewService(events)

	// Build the roster and a plan.
	athlete := models.NewAthlete("Jordan")
	if err := athletes.Save(athlete); err != nil {
		t.Fatalf("save athlete: %v", err)
	}

	plan := models.NewWorkoutPlan("Strength Block A").WithDays([]models.PlanDay{
		{Name: "Day 1 - Upper", Exercises: []models.PlanExercise{
			{Name: "Bench Press", Sets: 4, Reps: "6-8", RestSeconds: 120},
		}},
	})
	if err := plans.Save(plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	// Prefix lookup works the way the CLI resolves ids.
	got, err := athletes.Get(athlete.ID[:8])
	if err != nil {
		t.Fatalf("get athlete by prefix: %v", err)
	}
	if got.Name != "Jordan" {
		t.Errorf("expected Jordan, got %s", got.Name)
	}

	// Assign three sessions per week for two weeks.
	start := nextWeekday(time.Monday)
	res, err := svc.Assign(schedule.Request{
		CoachID:     "coach-1",
		AthleteID:   athlete.ID,
		TemplateID:  plan.ID,
		Title:       plan.Title,
		StartDate:   start,
		Weekdays:    recur.ParseWeekdays("mon,wed,fri"),
		Weeks:       2,
		Clock:       "18:00",
		DurationMin: 60,
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if res.Created != 6 {
		t.Fatalf("expected 6 sessions created, got %d", res.Created)
	}

	upcoming := svc.UpcomingForAthlete(athlete.ID, 0, "")
	if len(upcoming) != 6 {
		t.Fatalf("expected 6 upcoming sessions, got %d", len(upcoming))
	}
	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].Start.Before(upcoming[i-1].Start) {
			t.Errorf("upcoming sessions out of order at %d", i)
		}
	}

	// Reprogram to two sessions per week for three weeks.
	res, err = svc.Reprogram(schedule.Request{
		CoachID:     "coach-1",
		AthleteID:   athlete.ID,
		TemplateID:  plan.ID,
		Title:       plan.Title,
		StartDate:   nextWeekday(time.Tuesday),
		Weekdays:    recur.ParseWeekdays("tue,thu"),
		Weeks:       3,
		Clock:       "07:15",
		DurationMin: 45,
	})
	if err != nil {
		t.Fatalf("reprogram: %v", err)
	}
	if res.Deleted != 6 {
		t.Errorf("expected 6 deleted, got %d", res.Deleted)
	}
	if res.Created != 6 {
		t.Errorf("expected 6 created, got %d", res.Created)
	}

	upcoming = svc.UpcomingForAthlete(athlete.ID, 0, plan.ID)
	if len(upcoming) != 6 {
		t.Fatalf("expected 6 sessions after reprogram, got %d", len(upcoming))
	}
	for _, e := range upcoming {
		wd := e.Start.Weekday()
		if wd != time.Tuesday && wd != time.Thursday {
			t.Errorf("session on %s, want Tuesday or Thursday", wd)
		}
		if e.Start.Format("15:04") != "07:15" {
			t.Errorf("session at %s, want 07:15", e.Start.Format("15:04"))
		}
	}

	// The schedule survives a fresh load from the same store.
	reloaded, err := store.NewEventRepository(kv)
	if err != nil {
		t.Fatalf("reload events: %v", err)
	}
	if len(reloaded.GetAll()) != 6 {
		t.Fatalf("expected 6 persisted events, got %d", len(reloaded.GetAll()))
	}

	// ICS export round-trips through an iCalendar parser.
	feed := ics.Export(reloaded.GetAll())
	cal, err := ical.ParseCalendar(strings.NewReader(feed))
	if err != nil {
		t.Fatalf("parse exported calendar: %v", err)
	}
	if len(cal.Events()) != 6 {
		t.Errorf("expected 6 VEVENTs, got %d", len(cal.Events()))
	}

	// Markdown export names the athlete, not the id.
	md := string(export.MarkdownSchedule(reloaded.GetAll(), map[string]string{athlete.ID: athlete.Name}))
	if !strings.Contains(md, "Jordan") {
		t.Errorf("expected athlete name in markdown schedule:\n%s", md)
	}
	if strings.Contains(md, athlete.ID) {
		t.Errorf("expected athlete id to be replaced by name in markdown schedule")
	}
}

func TestReplaceIsInvisibleToConcurrentReaders(t *testing.T) {
	kv := store.NewMemoryStore()
	events, err := store.NewEventRepository(kv)
	if err != nil {
		t.Fatalf("open event repo: %v", err)
	}
	svc := schedule.NewService(events)

	req := schedule.Request{
		CoachID:    "coach-1",
		AthleteID:  "ath-1",
		TemplateID: "plan-1",
		Title:      "Intervals",
		StartDate:  nextWeekday(time.Monday),
		Weekdays:   recur.ParseWeekdays("mon"),
		Weeks:      2,
	}
	if _, err := svc.Assign(req); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Every persisted state another process could read must contain a
	// complete schedule: never the gap between delete and re-insert.
	writes := 0
	events.Subscribe(func() {
		writes++
		if n := len(events.GetAll()); n != 4 {
			t.Errorf("observed intermediate state with %d events, want the complete replacement", n)
		}
	})

	req.Weekdays = recur.ParseWeekdays("wed,fri")
	res, err := svc.Reprogram(req)
	if err != nil {
		t.Fatalf("reprogram: %v", err)
	}
	if res.Deleted != 2 || res.Created != 4 {
		t.Fatalf("expected {2 deleted, 4 created}, got %+v", res)
	}
	if writes != 1 {
		t.Errorf("expected a single store write, got %d", writes)
	}
}
