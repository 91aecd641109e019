// ABOUTME: AI workout plan generation: prompt building and response parsing.
// ABOUTME: The model's output is structured JSON, validated before use.
package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"coachcal/internal/models"
)

// PlanRequest describes what the coach wants generated.
type PlanRequest struct {
	Goal        string
	Experience  string // beginner, intermediate, advanced
	DaysPerWeek int
	Equipment   string // gym, home, minimal
	Injuries    string
}

const systemPrompt = "You are a professional strength and conditioning coach. " +
	"You design safe, progressive training plans and answer only in the requested format."

// planJSON mirrors the JSON shape the model is asked for.
type planJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Days        []struct {
		Name      string `json:"name"`
		Exercises []struct {
			Name        string `json:"name"`
			Sets        int    `json:"sets"`
			Reps        string `json:"reps"`
			RestSeconds int    `json:"rest_seconds"`
			Notes       string `json:"notes"`
		} `json:"exercises"`
	} `json:"days"`
}

// GeneratePlan asks the model for a workout plan and parses the result.
// The response is never trusted blindly: malformed or empty plans surface
// as errors for the caller to retry or report.
func (c *Client) GeneratePlan(req PlanRequest) (*models.WorkoutPlan, error) {
	response, err := c.Chat([]Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPlanPrompt(req)},
	}, 0.7)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	plan, err := ParsePlanResponse(response)
	if err != nil {
		return nil, fmt.Errorf("parse generated plan: %w", err)
	}
	return plan, nil
}

func buildPlanPrompt(req PlanRequest) string {
	var sb strings.Builder

	sb.WriteString("Create a weekly workout plan.\n\n")
	sb.WriteString("CLIENT:\n")
	sb.WriteString(fmt.Sprintf("- Goal: %s\n", req.Goal))
	if req.Experience != "" {
		sb.WriteString(fmt.Sprintf("- Experience: %s\n", req.Experience))
	}
	sb.WriteString(fmt.Sprintf("- Training days per week: %d\n", req.DaysPerWeek))
	if req.Equipment != "" {
		sb.WriteString(fmt.Sprintf("- Equipment: %s\n", req.Equipment))
	}
	if req.Injuries != "" {
		sb.WriteString(fmt.Sprintf("- Injuries/limitations: %s\n", req.Injuries))
	}

	sb.WriteString("\nRESPONSE FORMAT (strict JSON, no prose):\n")
	sb.WriteString(`{
  "title": "Plan name",
  "description": "Methodology summary",
  "days": [
    {
      "name": "Day 1 - Upper",
      "exercises": [
        {
          "name": "Bench Press",
          "sets": 4,
          "reps": "6-8",
          "rest_seconds": 120,
          "notes": "Controlled eccentric"
        }
      ]
    }
  ]
}`)
	sb.WriteString("\n\nThe days array must contain exactly the requested number of training days.")

	return sb.String()
}

// ParsePlanResponse extracts and validates the JSON plan from a model
// reply, tolerating code fences and surrounding prose.
func ParsePlanResponse(response string) (*models.WorkoutPlan, error) {
	var data planJSON
	if err := json.Unmarshal([]byte(extractJSON(response)), &data); err != nil {
		return nil, fmt.Errorf("decode plan JSON: %w", err)
	}

	if strings.TrimSpace(data.Title) == "" {
		return nil, fmt.Errorf("generated plan has no title")
	}
	if len(data.Days) == 0 {
		return nil, fmt.Errorf("generated plan has no training days")
	}

	plan := models.NewWorkoutPlan(data.Title).WithDescription(data.Description)
	days := make([]models.PlanDay, 0, len(data.Days))
	for _, d := range data.Days {
		day := models.PlanDay{Name: d.Name}
		for _, ex := range d.Exercises {
			day.Exercises = append(day.Exercises, models.PlanExercise{
				Name:        ex.Name,
				Sets:        ex.Sets,
				Reps:        ex.Reps,
				RestSeconds: ex.RestSeconds,
				Notes:       ex.Notes,
			})
		}
		days = append(days, day)
	}
	plan.WithDays(days)
	return plan, nil
}

// extractJSON strips code fences and surrounding prose, keeping the
// outermost JSON object.
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}
