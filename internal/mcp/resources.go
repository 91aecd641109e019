// ABOUTME: MCP resource implementations for the scheduler.
// ABOUTME: Provides coachcal://schedule and coachcal://plans resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"coachcal/internal/models"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coachcal://schedule",
		Name:        "Upcoming Schedule",
		Description: "Upcoming training sessions for every athlete",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coachcal://plans",
		Name:        "Workout Plans",
		Description: "All stored workout plans with days and exercises",
		MIMEType:    "application/json",
	}, s.handlePlansResource)
}

func (s *Server) handleScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type athleteSchedule struct {
		Athlete  models.Athlete         `json:"athlete"`
		Sessions []models.CalendarEvent `json:"sessions"`
	}

	var out []athleteSchedule
	for _, a := range s.athletes.List() {
		sessions := s.scheduler.UpcomingForAthlete(a.ID, 0, "")
		if len(sessions) == 0 {
			continue
		}
		out = append(out, athleteSchedule{Athlete: a, Sessions: sessions})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "coachcal://schedule",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handlePlansResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.plans.List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal plans: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "coachcal://plans",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
