// ABOUTME: MCP tool implementations for the scheduler.
// ABOUTME: Roster/plan listing, upcoming sessions, assignment, and reprogramming.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"coachcal/internal/recur"
	"coachcal/internal/schedule"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_athletes",
		Description: "List the coach's athletes",
	}, s.handleListAthletes)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List stored workout plans",
	}, s.handleListPlans)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "upcoming_sessions",
		Description: "List an athlete's upcoming training sessions, earliest first",
	}, s.handleUpcomingSessions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_plan",
		Description: "Schedule recurring sessions of a plan for an athlete (additive)",
	}, s.handleAssignPlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reprogram_plan",
		Description: "Replace an athlete's future sessions of a plan with a new weekly schedule; past sessions are never touched",
	}, s.handleReprogramPlan)
}

// Tool input/output types

type upcomingInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"description=Athlete ID or prefix,required"`
	Limit     int    `json:"limit,omitempty" jsonschema:"description=Max results (default 12)"`
	PlanID    string `json:"plan_id,omitempty" jsonschema:"description=Restrict to one plan"`
}

type assignInput struct {
	PlanID    string `json:"plan_id" jsonschema:"description=Plan ID or prefix,required"`
	AthleteID string `json:"athlete_id" jsonschema:"description=Athlete ID or prefix,required"`
	StartDate string `json:"start_date" jsonschema:"description=First candidate date (YYYY-MM-DD),required"`
	Weekdays  string `json:"weekdays" jsonschema:"description=Comma-separated weekday names (mon, wed, fri),required"`
	Weeks     int    `json:"weeks" jsonschema:"description=Number of weeks to schedule,required"`
	Time      string `json:"time,omitempty" jsonschema:"description=Session time HH:MM 24h (default 18:00)"`
	Duration  int    `json:"duration_minutes,omitempty" jsonschema:"description=Session length in minutes (default 60)"`
}

type scheduleOutput struct {
	Deleted int    `json:"deleted"`
	Created int    `json:"created"`
	Message string `json:"message"`
}

func (s *Server) handleListAthletes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	athletes := s.athletes.List()
	if len(athletes) == 0 {
		return nil, map[string]any{"message": "No athletes found."}, nil
	}
	return nil, athletes, nil
}

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plans := s.plans.List()
	if len(plans) == 0 {
		return nil, map[string]any{"message": "No plans found."}, nil
	}
	return nil, plans, nil
}

func (s *Server) handleUpcomingSessions(ctx context.Context, req *mcp.CallToolRequest, input upcomingInput) (*mcp.CallToolResult, any, error) {
	athlete, err := s.athletes.Get(input.AthleteID)
	if err != nil {
		return nil, nil, fmt.Errorf("athlete not found: %s", input.AthleteID)
	}

	events := s.scheduler.UpcomingForAthlete(athlete.ID, input.Limit, input.PlanID)
	if len(events) == 0 {
		return nil, map[string]any{"message": "No upcoming sessions."}, nil
	}
	return nil, events, nil
}

func (s *Server) handleAssignPlan(ctx context.Context, req *mcp.CallToolRequest, input assignInput) (*mcp.CallToolResult, scheduleOutput, error) {
	r, err := s.buildRequest(input)
	if err != nil {
		return nil, scheduleOutput{}, err
	}

	res, err := s.scheduler.Assign(*r)
	if err != nil {
		return nil, scheduleOutput{}, fmt.Errorf("assign plan: %w", err)
	}
	return nil, scheduleOutput{
		Created: res.Created,
		Message: fmt.Sprintf("Scheduled %d sessions of %q", res.Created, r.Title),
	}, nil
}

func (s *Server) handleReprogramPlan(ctx context.Context, req *mcp.CallToolRequest, input assignInput) (*mcp.CallToolResult, scheduleOutput, error) {
	r, err := s.buildRequest(input)
	if err != nil {
		return nil, scheduleOutput{}, err
	}

	res, err := s.scheduler.Reprogram(*r)
	if err != nil {
		return nil, scheduleOutput{}, fmt.Errorf("reprogram plan: %w", err)
	}
	return nil, scheduleOutput{
		Deleted: res.Deleted,
		Created: res.Created,
		Message: fmt.Sprintf("Replaced %d future sessions with %d new ones", res.Deleted, res.Created),
	}, nil
}

// buildRequest resolves ids and parses the schedule fields shared by
// assign and reprogram.
func (s *Server) buildRequest(input assignInput) (*schedule.Request, error) {
	plan, err := s.plans.Get(input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("plan not found: %s", input.PlanID)
	}
	athlete, err := s.athletes.Get(input.AthleteID)
	if err != nil {
		return nil, fmt.Errorf("athlete not found: %s", input.AthleteID)
	}

	startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %q: want YYYY-MM-DD", input.StartDate)
	}

	return &schedule.Request{
		CoachID:     s.coachID,
		AthleteID:   athlete.ID,
		TemplateID:  plan.ID,
		Title:       plan.Title,
		StartDate:   startDate,
		Weekdays:    recur.ParseWeekdays(input.Weekdays),
		Weeks:       input.Weeks,
		Clock:       input.Time,
		DurationMin: input.Duration,
	}, nil
}
