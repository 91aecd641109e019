// ABOUTME: Root Cobra command for coachcal CLI.
// ABOUTME: Opens the configured store and wires repositories via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachcal/internal/config"
	"coachcal/internal/schedule"
	"coachcal/internal/store"
)

var (
	cfg         *config.Config
	kvStore     store.KV
	eventRepo   *store.EventRepository
	planRepo    *store.PlanRepository
	athleteRepo *store.AthleteRepository
	scheduler   *schedule.Service
	coachID     string
)

var rootCmd = &cobra.Command{
	Use:   "coachcal",
	Short: "Coach-side training scheduler",
	Long: `Coachcal is a local-first CLI for coaches: manage your athlete roster,
build or AI-generate workout plans, put recurring sessions on the
calendar, and reprogram future sessions without touching training history.

QUICK START:

  $ coachcal athlete add "Jordan"             # Add an athlete
  $ coachcal plan add "Strength Block A"      # Create a plan
  $ coachcal assign a1b2 c3d4 \
      --start 2024-06-03 --days mon,wed,fri \
      --weeks 4 --time 18:00 --duration 60    # Schedule 12 sessions
  $ coachcal schedule c3d4                    # See upcoming sessions

REPROGRAMMING:

  Pass --replace to assign and every future session of that plan is
  swapped for the new pattern. Past sessions are never modified:

  $ coachcal assign a1b2 c3d4 --replace \
      --start 2024-07-01 --days tue,thu --weeks 4

AI PLAN GENERATION:

  $ export COACHCAL_AI_KEY=...                # Groq (or compatible) key
  $ coachcal plan generate --goal hypertrophy --days-per-week 4

SYNC (AUTOMATIC):

  With the default charm backend, data syncs across devices via Charm
  Cloud, E2E encrypted with your SSH key.

  $ coachcal sync link      # Link device to your Charm account
  $ coachcal sync status    # Check sync status

DATA STORAGE:

  Backend is configurable (charm, badger, sqlite) via config file or
  COACHCAL_BACKEND. Each collection is one JSON blob in the store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		coachID, err = cfg.EnsureCoachID()
		if err != nil {
			return err
		}

		kvStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open %s store: %w", cfg.GetBackend(), err)
		}

		if eventRepo, err = store.NewEventRepository(kvStore); err != nil {
			return err
		}
		if planRepo, err = store.NewPlanRepository(kvStore); err != nil {
			return err
		}
		if athleteRepo, err = store.NewAthleteRepository(kvStore); err != nil {
			return err
		}
		scheduler = schedule.NewService(eventRepo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if kvStore != nil {
			return kvStore.Close()
		}
		return nil
	},
}

// padRight pads s with spaces to at least width characters.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
