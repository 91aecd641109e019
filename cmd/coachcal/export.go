// ABOUTME: CLI command exporting calendar and roster data.
// ABOUTME: Formats: ics for calendar apps, json/yaml backups, markdown schedule.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachcal/internal/export"
	"coachcal/internal/ics"
	"coachcal/internal/models"
)

var (
	exportFormat  string
	exportAthlete string
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export calendar and roster data",
	Long: `Export coachcal data.

FORMATS:

  ics        iCalendar feed of scheduled sessions (default).
             Import into Google Calendar, Apple Calendar, etc.
             Event ids are stable, so re-imports update in place.
  json       Full backup: athletes, plans, and events.
  yaml       Same backup as YAML.
  markdown   Human-readable schedule table.

Examples:
  coachcal export > schedule.ics
  coachcal export --athlete c3d4 -o jordan.ics
  coachcal export --format json -o backup.json
  coachcal export --format markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events := eventRepo.GetAll()
		if exportAthlete != "" {
			athlete, err := athleteRepo.Get(exportAthlete)
			if err != nil {
				return err
			}
			events = eventRepo.GetByAthlete(athlete.ID)
		}

		var out []byte
		switch exportFormat {
		case "ics":
			out = []byte(ics.Export(events))
		case "json", "yaml":
			backup := &export.Backup{
				ExportedAt: time.Now(),
				Athletes:   athleteRepo.List(),
				Plans:      planRepo.List(),
				Events:     events,
			}
			var err error
			if exportFormat == "json" {
				out, err = export.JSON(backup)
			} else {
				out, err = export.YAML(backup)
			}
			if err != nil {
				return fmt.Errorf("encode backup: %w", err)
			}
		case "markdown", "md":
			names := make(map[string]string)
			for _, a := range athleteRepo.List() {
				names[a.ID] = a.Name
			}
			out = export.MarkdownSchedule(events, names)
		default:
			return fmt.Errorf("unknown format %q: want ics, json, yaml, or markdown", exportFormat)
		}

		if exportOutput == "" {
			fmt.Print(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported %d events to %s", countWorkouts(events), exportOutput)
		return nil
	},
}

func countWorkouts(events []models.CalendarEvent) int {
	n := 0
	for _, e := range events {
		if e.Type == models.EventTypeWorkout {
			n++
		}
	}
	return n
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "ics", "ics, json, yaml, or markdown")
	exportCmd.Flags().StringVarP(&exportAthlete, "athlete", "a", "", "restrict to one athlete's events")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
