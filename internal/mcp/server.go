// ABOUTME: MCP server setup for the workout session tree.
// ABOUTME: Wraps the gateway client, session cache, and auth manager.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/reps/internal/api"
	"github.com/harperreed/reps/internal/auth"
	"github.com/harperreed/reps/internal/cache"
)

// Server exposes the cached session tree and its write-through mutations
// over the Model Context Protocol.
type Server struct {
	mcpServer *mcp.Server
	mgr       *auth.Manager
	client    *api.Client
	store     *cache.Store
}

// NewServer creates an MCP server over an already-bootstrapped session.
func NewServer(mgr *auth.Manager, client *api.Client, store *cache.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "reps",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		mgr:       mgr,
		client:    client,
		store:     store,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
