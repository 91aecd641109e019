// ABOUTME: MCP server setup for the coachcal scheduler.
// ABOUTME: Gives AI assistants access to roster, plans, and scheduling tools.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"coachcal/internal/schedule"
	"coachcal/internal/store"
)

// Server wraps the MCP server with repository and scheduler access.
type Server struct {
	mcpServer *mcp.Server
	athletes  *store.AthleteRepository
	plans     *store.PlanRepository
	scheduler *schedule.Service
	coachID   string
}

// NewServer creates the MCP server and registers its tools and resources.
func NewServer(athletes *store.AthleteRepository, plans *store.PlanRepository, scheduler *schedule.Service, coachID string) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "coachcal",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		athletes:  athletes,
		plans:     plans,
		scheduler: scheduler,
		coachID:   coachID,
	}

	s.registerTools()
	s.registerResources()

	return s
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
