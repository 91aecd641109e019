// ABOUTME: Tests for data export formats.
// ABOUTME: Round-trips JSON and checks the Markdown schedule table.
package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"coachcal/internal/models"
)

func sampleBackup() *Backup {
	start := time.Date(2024, time.June, 3, 18, 0, 0, 0, time.Local)
	a := models.NewAthlete("Jordan")
	p := models.NewWorkoutPlan("Strength A")
	e := models.NewWorkoutEvent("Strength A", start, start.Add(time.Hour), "coach-1", a.ID, p.ID)
	return &Backup{
		ExportedAt: time.Now(),
		Athletes:   []models.Athlete{*a},
		Plans:      []models.WorkoutPlan{*p},
		Events:     []models.CalendarEvent{*e},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b := sampleBackup()

	data, err := JSON(b)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var got Backup
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Export not decodable: %v", err)
	}
	if len(got.Events) != 1 || got.Events[0].ID != b.Events[0].ID {
		t.Errorf("Events lost in round trip: %+v", got.Events)
	}
	if len(got.Athletes) != 1 || got.Athletes[0].Name != "Jordan" {
		t.Errorf("Athletes lost in round trip: %+v", got.Athletes)
	}
}

func TestYAMLContainsSections(t *testing.T) {
	data, err := YAML(sampleBackup())
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	for _, want := range []string{"athletes:", "plans:", "events:"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("YAML missing %q section", want)
		}
	}
}

func TestMarkdownScheduleSortedWithNames(t *testing.T) {
	start := time.Date(2024, time.June, 5, 18, 0, 0, 0, time.Local)
	later := models.NewWorkoutEvent("Later", start, start.Add(time.Hour), "coach-1", "ath-1", "tpl-1")
	earlier := models.NewWorkoutEvent("Earlier", start.AddDate(0, 0, -2), start.AddDate(0, 0, -2).Add(time.Hour), "coach-1", "ath-1", "tpl-1")

	out := string(MarkdownSchedule(
		[]models.CalendarEvent{*later, *earlier},
		map[string]string{"ath-1": "Jordan"},
	))

	if !strings.Contains(out, "Jordan") {
		t.Error("Athlete name not resolved")
	}
	if strings.Index(out, "Earlier") > strings.Index(out, "Later") {
		t.Error("Schedule table not sorted by start")
	}
	if !strings.Contains(out, "2024-06-03") || !strings.Contains(out, "18:00") {
		t.Errorf("Missing date/time cells:\n%s", out)
	}
}
