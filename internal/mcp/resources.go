// ABOUTME: MCP resource implementations for the session tree.
// ABOUTME: Provides reps://sessions and reps://catalog as JSON documents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/reps/internal/models"
)

func (s *Server) registerResources() {
	// reps://sessions - the full cached session tree
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "reps://sessions",
		Name:        "Workout Sessions",
		Description: "Every cached session with nested exercises and sets, newest first",
		MIMEType:    "application/json",
	}, s.handleSessionsResource)

	// reps://catalog - the fixed exercise catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "reps://catalog",
		Name:        "Exercise Catalog",
		Description: "Available exercise names grouped by muscle group",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

// Resource handlers

func (s *Server) handleSessionsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.store.Snapshot()

	result := map[string]any{
		"loaded":   snap.Loaded,
		"sessions": snap.Sessions,
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sessions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "reps://sessions",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(models.ExercisesByGroup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "reps://catalog",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
