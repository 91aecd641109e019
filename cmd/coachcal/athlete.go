// ABOUTME: CLI commands for managing the athlete roster.
// ABOUTME: Supports add, list, and remove subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachcal/internal/models"
)

var athleteNotes string

var athleteCmd = &cobra.Command{
	Use:     "athlete",
	Aliases: []string{"a"},
	Short:   "Manage athletes",
	Long: `Manage the athletes you coach.

COMMANDS:

  add      Add an athlete to the roster
  list     List the roster
  remove   Remove an athlete (their calendar events are kept)

Athlete ids can be abbreviated to a unique prefix everywhere they are
accepted.`,
}

var athleteAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an athlete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := models.NewAthlete(args[0])
		if athleteNotes != "" {
			a.WithNotes(athleteNotes)
		}

		if err := athleteRepo.Save(a); err != nil {
			return fmt.Errorf("failed to save athlete: %w", err)
		}

		color.Green("✓ Added athlete %s", a.Name)
		fmt.Printf("  ID: %s\n", a.ID[:8])
		return nil
	},
}

var athleteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List athletes",
	RunE: func(cmd *cobra.Command, args []string) error {
		athletes := athleteRepo.List()
		if len(athletes) == 0 {
			fmt.Println("No athletes found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range athletes {
			line := fmt.Sprintf("%s %s", faint.Sprint(a.ID[:8]), padRight(a.Name, 20))
			if a.Notes != "" {
				line += faint.Sprint(a.Notes)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var athleteRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an athlete",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := athleteRepo.Get(args[0])
		if err != nil {
			return err
		}
		if err := athleteRepo.Delete(a.ID); err != nil {
			return fmt.Errorf("failed to remove athlete: %w", err)
		}

		color.Green("✓ Removed %s", a.Name)
		return nil
	},
}

func init() {
	athleteAddCmd.Flags().StringVarP(&athleteNotes, "notes", "n", "", "freeform notes")

	athleteCmd.AddCommand(athleteAddCmd)
	athleteCmd.AddCommand(athleteListCmd)
	athleteCmd.AddCommand(athleteRemoveCmd)
	rootCmd.AddCommand(athleteCmd)
}
