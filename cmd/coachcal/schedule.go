// ABOUTME: CLI command listing an athlete's upcoming training sessions.
// ABOUTME: Earliest first, capped at a limit, optionally filtered by plan.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachcal/internal/schedule"
)

var (
	scheduleLimit int
	schedulePlan  string
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule <athlete>",
	Aliases: []string{"sched"},
	Short:   "Show an athlete's upcoming sessions",
	Long: `Show an athlete's upcoming training sessions, earliest first.

Sessions that already started are not listed; a session starting right
now still is. Defaults to the next 12 sessions.

Examples:
  coachcal schedule c3d4
  coachcal schedule c3d4 --limit 30
  coachcal schedule c3d4 --plan a1b2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		athlete, err := athleteRepo.Get(args[0])
		if err != nil {
			return err
		}

		templateID := ""
		if schedulePlan != "" {
			plan, err := planRepo.Get(schedulePlan)
			if err != nil {
				return err
			}
			templateID = plan.ID
		}

		events := scheduler.UpcomingForAthlete(athlete.ID, scheduleLimit, templateID)
		if len(events) == 0 {
			fmt.Printf("No upcoming sessions for %s.\n", athlete.Name)
			return nil
		}

		color.New(color.Bold).Printf("Upcoming for %s\n", athlete.Name)
		faint := color.New(color.Faint)
		for _, e := range events {
			fmt.Printf("  %s %s  %s\n",
				e.Start.Format("Mon 2006-01-02"),
				faint.Sprintf("%s–%s", e.Start.Format("15:04"), e.End.Format("15:04")),
				e.Title)
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().IntVarP(&scheduleLimit, "limit", "l", schedule.DefaultUpcomingLimit, "max sessions to show")
	scheduleCmd.Flags().StringVarP(&schedulePlan, "plan", "p", "", "restrict to one plan")

	rootCmd.AddCommand(scheduleCmd)
}
