// ABOUTME: MCP tool implementations for workout sessions, exercises, and sets.
// ABOUTME: Every mutation is write-through: server call first, cache second.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/reps/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "whoami",
		Description: "Show the authenticated account",
	}, s.handleWhoami)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List workout sessions with their exercises and sets",
	}, s.handleListSessions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_session",
		Description: "Create a new workout session",
	}, s.handleAddSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add a catalog exercise to a session",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Add a set (type, weight, reps) to an exercise",
	}, s.handleAddSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session and everything under it",
	}, s.handleDeleteSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise and its sets from a session",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_set",
		Description: "Delete a single set from an exercise",
	}, s.handleDeleteSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercise_catalog",
		Description: "List the exercise catalog grouped by muscle group",
	}, s.handleListCatalog)
}

// Tool input/output types

type emptyInput struct{}

type whoamiOutput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type addSessionInput struct {
	Name string `json:"name" jsonschema:"Session name"`
	Date string `json:"date,omitempty" jsonschema:"Session time in RFC 3339; defaults to now"`
}

type sessionOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addExerciseInput struct {
	SessionID string `json:"session_id" jsonschema:"Target session ID"`
	Name      string `json:"name" jsonschema:"Catalog exercise name such as BENCH_PRESS"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addSetInput struct {
	SessionID  string  `json:"session_id" jsonschema:"Session holding the exercise"`
	ExerciseID string  `json:"exercise_id" jsonschema:"Target exercise ID"`
	Type       string  `json:"type" jsonschema:"Set type: WARMUP REGULAR or SUPERSET"`
	Weight     float64 `json:"weight" jsonschema:"Weight used; must be positive"`
	Reps       int     `json:"reps" jsonschema:"Repetitions performed; must be positive"`
}

type setOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type deleteSessionInput struct {
	SessionID string `json:"session_id" jsonschema:"Session ID to delete"`
}

type deleteExerciseInput struct {
	SessionID  string `json:"session_id" jsonschema:"Session holding the exercise"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise ID to delete"`
}

type deleteSetInput struct {
	SessionID  string `json:"session_id" jsonschema:"Session holding the exercise"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise holding the set"`
	SetID      string `json:"set_id" jsonschema:"Set ID to delete"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleWhoami(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, whoamiOutput, error) {
	user := s.mgr.User()
	if user == nil {
		return nil, whoamiOutput{}, fmt.Errorf("not logged in")
	}
	return nil, whoamiOutput{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	snap := s.store.Snapshot()
	if !snap.Loaded {
		return nil, nil, fmt.Errorf("sessions not loaded; log in first")
	}
	if len(snap.Sessions) == 0 {
		return nil, map[string]any{"message": "No sessions yet."}, nil
	}
	return nil, snap.Sessions, nil
}

func (s *Server) handleAddSession(ctx context.Context, req *mcp.CallToolRequest, input addSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	if input.Name == "" {
		return nil, sessionOutput{}, fmt.Errorf("session name is required")
	}

	var date *time.Time
	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			return nil, sessionOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		date = &t
	}

	sess, err := s.client.CreateSession(ctx, input.Name, date)
	if err != nil {
		return nil, sessionOutput{}, err
	}

	// Server confirmed; record the outcome locally. The fresh session goes
	// in front to keep the newest-first ordering of the fetched list.
	snap := s.store.Snapshot()
	if snap.Loaded {
		s.store.SetSessions(append([]models.Session{sess}, snap.Sessions...))
	}

	return nil, sessionOutput{
		ID:      sess.ID,
		Name:    sess.Name,
		Message: fmt.Sprintf("Created session %q (ID: %s)", sess.Name, sess.ID),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if !models.IsValidExercise(input.Name) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown exercise: %s", input.Name)
	}

	ex, err := s.client.CreateExercise(ctx, input.SessionID, input.Name)
	if err != nil {
		return nil, exerciseOutput{}, err
	}
	s.store.AddExerciseToSession(input.SessionID, ex)

	return nil, exerciseOutput{
		ID:      ex.ID,
		Name:    ex.Name,
		Message: fmt.Sprintf("Added %s (ID: %s)", models.FormatExerciseName(ex.Name), ex.ID),
	}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, setOutput, error) {
	if !models.IsValidSetType(input.Type) {
		return nil, setOutput{}, fmt.Errorf("invalid set type %q: must be WARMUP, REGULAR, or SUPERSET", input.Type)
	}
	if input.Weight <= 0 {
		return nil, setOutput{}, fmt.Errorf("weight must be positive")
	}
	if input.Reps <= 0 {
		return nil, setOutput{}, fmt.Errorf("reps must be positive")
	}

	set, err := s.client.CreateSet(ctx, input.ExerciseID, models.SetType(input.Type), input.Weight, input.Reps)
	if err != nil {
		return nil, setOutput{}, err
	}
	s.store.AddSetToExercise(input.SessionID, input.ExerciseID, set)

	return nil, setOutput{
		ID:      set.ID,
		Message: fmt.Sprintf("Added %s set: %.1f x %d (ID: %s)", set.Type, set.Weight, set.Reps, set.ID),
	}, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input deleteSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.client.DeleteSession(ctx, input.SessionID); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.DeleteSession(input.SessionID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted session %s", input.SessionID)}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input deleteExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.client.DeleteExercise(ctx, input.ExerciseID); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.DeleteExerciseFromSession(input.SessionID, input.ExerciseID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted exercise %s", input.ExerciseID)}, nil
}

func (s *Server) handleDeleteSet(ctx context.Context, req *mcp.CallToolRequest, input deleteSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.client.DeleteSet(ctx, input.SetID); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.DeleteSetFromExercise(input.SessionID, input.ExerciseID, input.SetID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted set %s", input.SetID)}, nil
}

func (s *Server) handleListCatalog(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return nil, models.ExercisesByGroup, nil
}
