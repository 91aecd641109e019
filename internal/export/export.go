// ABOUTME: JSON, YAML, and Markdown exports of coachcal data.
// ABOUTME: JSON is the backup format; Markdown renders a schedule table.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"coachcal/internal/models"
)

// Backup is the full-data export shape.
type Backup struct {
	ExportedAt time.Time              `json:"exportedAt" yaml:"exportedAt"`
	Athletes   []models.Athlete       `json:"athletes" yaml:"athletes"`
	Plans      []models.WorkoutPlan   `json:"plans" yaml:"plans"`
	Events     []models.CalendarEvent `json:"events" yaml:"events"`
}

// JSON renders the backup as indented JSON.
func JSON(b *Backup) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// YAML renders the backup as YAML.
func YAML(b *Backup) ([]byte, error) {
	return yaml.Marshal(b)
}

// MarkdownSchedule renders the events as a Markdown table, earliest first.
// athleteNames maps athlete ids to display names; unknown ids fall back to
// the id itself.
func MarkdownSchedule(events []models.CalendarEvent, athleteNames map[string]string) []byte {
	sorted := make([]models.CalendarEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var sb strings.Builder
	sb.WriteString("# Training Schedule\n\n")
	sb.WriteString("| Date | Time | Session | Athlete |\n")
	sb.WriteString("|------|------|---------|--------|\n")

	for _, e := range sorted {
		names := make([]string, 0, len(e.AthleteIDs))
		for _, id := range e.AthleteIDs {
			if name, ok := athleteNames[id]; ok {
				names = append(names, name)
			} else {
				names = append(names, id)
			}
		}
		sb.WriteString(fmt.Sprintf("| %s | %s–%s | %s | %s |\n",
			e.Start.Format("2006-01-02"),
			e.Start.Format("15:04"),
			e.End.Format("15:04"),
			e.Title,
			strings.Join(names, ", ")))
	}

	return []byte(sb.String())
}
