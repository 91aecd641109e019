// ABOUTME: CLI commands for workout plans.
// ABOUTME: Supports add, list, show, remove, and AI generation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachcal/internal/gen"
	"coachcal/internal/models"
)

var (
	planDesc string

	genGoal        string
	genExperience  string
	genDaysPerWeek int
	genEquipment   string
	genInjuries    string
	genDryRun      bool
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Manage workout plans",
	Long: `Manage reusable workout plans.

A plan is a template: a title, optional description, and training days
with exercise prescriptions. Scheduling happens separately with
'coachcal assign', which puts sessions of a plan on an athlete's
calendar.

COMMANDS:

  add        Create a plan by hand
  list       List stored plans
  show       Show one plan's days and exercises
  remove     Delete a plan (scheduled sessions are kept)
  generate   Generate a plan with AI

Plan ids can be abbreviated to a unique prefix.`,
}

var planAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewWorkoutPlan(args[0])
		if planDesc != "" {
			p.WithDescription(planDesc)
		}

		if err := planRepo.Save(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		color.Green("✓ Created plan %s", p.Title)
		fmt.Printf("  ID: %s\n", p.ID[:8])
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans := planRepo.List()
		if len(plans) == 0 {
			fmt.Println("No plans found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range plans {
			fmt.Printf("%s %s%s\n",
				faint.Sprint(p.ID[:8]),
				padRight(p.Title, 28),
				faint.Sprintf("%d days", len(p.Days)))
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := planRepo.Get(args[0])
		if err != nil {
			return err
		}

		printPlan(p)
		return nil
	},
}

var planRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := planRepo.Get(args[0])
		if err != nil {
			return err
		}
		if err := planRepo.Delete(p.ID); err != nil {
			return fmt.Errorf("failed to remove plan: %w", err)
		}

		color.Green("✓ Removed %s", p.Title)
		return nil
	},
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan with AI",
	Long: `Generate a workout plan with AI and save it.

Requires an API key for Groq (or any OpenAI-compatible endpoint):

  export COACHCAL_AI_KEY=gsk_...

Examples:
  coachcal plan generate --goal "marathon prep" --days-per-week 4
  coachcal plan generate --goal hypertrophy --experience beginner \
      --equipment home --injuries "left knee"

Pass --dry-run to print the plan without saving it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.AIKey == "" {
			return fmt.Errorf("no API key set: export COACHCAL_AI_KEY to use plan generation")
		}

		client := gen.NewClient(cfg.AIKey, cfg.AIBaseURL, cfg.AIModel)

		fmt.Println("Generating plan...")
		p, err := client.GeneratePlan(gen.PlanRequest{
			Goal:        genGoal,
			Experience:  genExperience,
			DaysPerWeek: genDaysPerWeek,
			Equipment:   genEquipment,
			Injuries:    genInjuries,
		})
		if err != nil {
			return err
		}

		printPlan(p)

		if genDryRun {
			color.Yellow("⚠ Dry run: plan not saved")
			return nil
		}

		if err := planRepo.Save(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		color.Green("✓ Saved plan %s", p.Title)
		fmt.Printf("  ID: %s\n", p.ID[:8])
		return nil
	},
}

func printPlan(p *models.WorkoutPlan) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Println(p.Title)
	faint.Printf("%s\n", p.ID)
	if p.Description != "" {
		fmt.Println(p.Description)
	}

	for _, day := range p.Days {
		fmt.Println()
		bold.Println(day.Name)
		for _, ex := range day.Exercises {
			line := fmt.Sprintf("  %s", padRight(ex.Name, 24))
			if ex.Sets > 0 {
				line += fmt.Sprintf("%dx%s", ex.Sets, ex.Reps)
			}
			if ex.RestSeconds > 0 {
				line += faint.Sprintf("  rest %ds", ex.RestSeconds)
			}
			fmt.Println(line)
			if ex.Notes != "" {
				faint.Printf("    %s\n", ex.Notes)
			}
		}
	}
}

func init() {
	planAddCmd.Flags().StringVarP(&planDesc, "desc", "d", "", "plan description")

	planGenerateCmd.Flags().StringVar(&genGoal, "goal", "", "training goal (required)")
	planGenerateCmd.Flags().StringVar(&genExperience, "experience", "", "beginner, intermediate, or advanced")
	planGenerateCmd.Flags().IntVar(&genDaysPerWeek, "days-per-week", 3, "training days per week")
	planGenerateCmd.Flags().StringVar(&genEquipment, "equipment", "", "gym, home, or minimal")
	planGenerateCmd.Flags().StringVar(&genInjuries, "injuries", "", "injuries or limitations")
	planGenerateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print without saving")
	_ = planGenerateCmd.MarkFlagRequired("goal")

	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planRemoveCmd)
	planCmd.AddCommand(planGenerateCmd)
	rootCmd.AddCommand(planCmd)
}
