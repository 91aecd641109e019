// ABOUTME: iCalendar export of scheduled training sessions.
// ABOUTME: One VEVENT per calendar event, importable by any calendar app.
package ics

import (
	ical "github.com/arran4/golang-ical"

	"coachcal/internal/models"
)

// Export renders the events as an iCalendar document. Event ids become
// VEVENT uids so re-imports update rather than duplicate.
func Export(events []models.CalendarEvent) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//coachcal//coachcal//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetDtStampTime(e.UpdatedAt)
		if e.WorkoutTemplateID != "" {
			ve.SetDescription("Plan: " + e.WorkoutTemplateID)
		}
	}

	return cal.Serialize()
}
