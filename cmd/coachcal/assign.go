// ABOUTME: CLI command for scheduling a plan's sessions onto an athlete's calendar.
// ABOUTME: Additive by default; --replace swaps out the plan's future sessions.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachcal/internal/recur"
	"coachcal/internal/schedule"
)

var (
	assignStart    string
	assignDays     string
	assignWeeks    int
	assignTime     string
	assignDuration int
	assignReplace  bool
)

var assignCmd = &cobra.Command{
	Use:   "assign <plan> <athlete>",
	Short: "Schedule a plan's sessions for an athlete",
	Long: `Schedule recurring sessions of a plan on an athlete's calendar.

Sessions land on the chosen weekdays for the given number of weeks,
starting from --start (today if omitted). Each session is one calendar
event at --time lasting --duration minutes.

Examples:
  coachcal assign a1b2 c3d4 --days mon,wed,fri --weeks 4
  coachcal assign a1b2 c3d4 --start 2024-06-03 --days tue,thu \
      --time 07:15 --duration 45

REPLACING A SCHEDULE:

  With --replace, every not-yet-started session of this plan for this
  athlete is removed and the new pattern takes its place. Sessions that
  already started stay untouched, so training history is preserved.
  The swap is a single store write: the new schedule is built in full
  before anything is deleted.

  coachcal assign a1b2 c3d4 --replace --days tue,thu --weeks 4

  Passing --replace with --days "" clears the plan's future sessions.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planRepo.Get(args[0])
		if err != nil {
			return err
		}
		athlete, err := athleteRepo.Get(args[1])
		if err != nil {
			return err
		}

		start := time.Now()
		if assignStart != "" {
			start, err = time.ParseInLocation("2006-01-02", assignStart, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start %q: want YYYY-MM-DD", assignStart)
			}
		}

		req := schedule.Request{
			CoachID:     coachID,
			AthleteID:   athlete.ID,
			TemplateID:  plan.ID,
			Title:       plan.Title,
			StartDate:   start,
			Weekdays:    recur.ParseWeekdays(assignDays),
			Weeks:       assignWeeks,
			Clock:       assignTime,
			DurationMin: assignDuration,
		}

		var res schedule.Result
		if assignReplace {
			res, err = scheduler.Reprogram(req)
		} else {
			res, err = scheduler.Assign(req)
		}
		if err != nil {
			color.Yellow("⚠ Schedule change unconfirmed (%d deleted, %d created): %v",
				res.Deleted, res.Created, err)
			return err
		}

		if assignReplace {
			color.Green("✓ Reprogrammed %q for %s", plan.Title, athlete.Name)
			fmt.Printf("  Removed %d future sessions, scheduled %d new\n", res.Deleted, res.Created)
		} else {
			color.Green("✓ Scheduled %d sessions of %q for %s", res.Created, plan.Title, athlete.Name)
		}
		return nil
	},
}

func init() {
	assignCmd.Flags().StringVarP(&assignStart, "start", "s", "", "first candidate date, YYYY-MM-DD (default today)")
	assignCmd.Flags().StringVarP(&assignDays, "days", "d", "", "weekdays, e.g. mon,wed,fri (required)")
	assignCmd.Flags().IntVarP(&assignWeeks, "weeks", "w", 4, "number of weeks")
	assignCmd.Flags().StringVarP(&assignTime, "time", "t", recur.DefaultClock, "session time, HH:MM 24h")
	assignCmd.Flags().IntVar(&assignDuration, "duration", recur.DefaultDurationMin, "session length in minutes")
	assignCmd.Flags().BoolVar(&assignReplace, "replace", false, "replace the plan's future sessions")
	_ = assignCmd.MarkFlagRequired("days")

	rootCmd.AddCommand(assignCmd)
}
