// Package mcp provides an MCP (Model Context Protocol) server that exposes
// fokus functionality as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fokus-app/fokus/internal/core"
	"github.com/fokus-app/fokus/pkg/models"
)

// Server wraps the fokus services and exposes them as MCP tools. Policy
// rejections come back as tool errors carrying the same alert text the CLI
// shows, so an assistant relays the coaching message instead of inventing
// its own.
type Server struct {
	server   *gomcp.Server
	store    *core.Store
	repo     *core.Repository
	sessions *core.SessionController
	reporter *core.Reporter
}

// NewServer creates a new MCP server over the given services.
func NewServer(store *core.Store, repo *core.Repository, sessions *core.SessionController, reporter *core.Reporter, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		store:    store,
		repo:     repo,
		sessions: sessions,
		reporter: reporter,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "fokus", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type addTaskInput struct {
	Title            string `json:"title" jsonschema:"required,the task title"`
	MainIdea         bool   `json:"main_idea,omitempty" jsonschema:"create a main-idea container instead of a workable task"`
	ParentID         string `json:"parent_id,omitempty" jsonschema:"main-idea ID to attach this task under as a sub-idea"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty" jsonschema:"estimated focus minutes (defaults from config)"`
}

type taskOutput struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Status           string   `json:"status"`
	IsMainIdea       bool     `json:"is_main_idea,omitempty"`
	ParentID         string   `json:"parent_id,omitempty"`
	EstimatedMinutes int      `json:"estimated_minutes,omitempty"`
	ActualMinutes    int      `json:"actual_minutes,omitempty"`
	Notes            []string `json:"notes,omitempty"`
	CreatedAt        string   `json:"created_at"`
	CompletedAt      string   `json:"completed_at,omitempty"`
}

type listTasksInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter tasks by status (backlog, today, done)"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type taskIDInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the task identifier (e.g. IDE-0001)"`
}

type messageOutput struct {
	Message string `json:"message"`
}

type stopEarlyInput struct {
	Reason string `json:"reason" jsonschema:"required,why the session is being abandoned (minimum length enforced)"`
}

type stopEarlyOutput struct {
	Checkpoint  string `json:"checkpoint"`
	Consequence string `json:"consequence,omitempty"`
	LockedOut   bool   `json:"locked_out"`
}

type getProgressInput struct {
	ParentID string `json:"parent_id" jsonschema:"required,the main-idea identifier"`
}

type progressOutput struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type getReportInput struct{}

type reportOutput struct {
	Report string `json:"report"`
}

type getAnalyticsInput struct{}

type analyticsOutput struct {
	TotalCompleted int `json:"total_completed"`
	TotalEstimated int `json:"total_estimated"`
	TotalActual    int `json:"total_actual"`
	Accuracy       int `json:"accuracy"`
	AvgFocusTime   int `json:"avg_focus_time"`
}

type getAccountabilityInput struct{}

type accountabilityOutput struct {
	FailedAttempts  int    `json:"failed_attempts"`
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	ReputationScore int    `json:"reputation_score"`
	LockedOut       bool   `json:"locked_out"`
	LockoutUntil    string `json:"lockout_until,omitempty"`
	FocusMode       bool   `json:"focus_mode"`
	ActiveTaskID    string `json:"active_task_id,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the backlog. Set main_idea for a container, or parent_id to attach a sub-idea under one.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks with an optional status filter (backlog, today, done). Newest first.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "move_to_today",
		Description: "Promote a task into today's focus set. Fails when the set already holds the daily maximum.",
	}, s.handleMoveToToday)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "move_to_backlog",
		Description: "Demote a task from today's set back to the backlog.",
	}, s.handleMoveToBacklog)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "start_focus",
		Description: "Start a locked focus session on a task. Fails during an active lockout.",
	}, s.handleStartFocus)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "complete_task",
		Description: "Complete the task under active focus and end the session.",
	}, s.handleCompleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "stop_early",
		Description: "Abandon the active focus session with a reason. Records a checkpoint note and applies the accountability consequence.",
	}, s.handleStopEarly)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_progress",
		Description: "Get the completion rollup for a main idea's sub-ideas.",
	}, s.handleGetProgress)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_report",
		Description: "Render today's plain-text focus report.",
	}, s.handleGetReport)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_analytics",
		Description: "Get estimation-accuracy analytics over finished tasks.",
	}, s.handleGetAnalytics)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_accountability",
		Description: "Get the accountability record: failures, streaks, reputation, lockout, and the live session.",
	}, s.handleGetAccountability)
}

// --- Tool handlers ---

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.Title == "" {
		return errorResult("title is required"), taskOutput{}, nil
	}

	t, err := s.repo.AddTask(input.Title, core.AddTaskOpts{
		MainIdea:         input.MainIdea,
		ParentID:         input.ParentID,
		EstimatedMinutes: input.EstimatedMinutes,
	})
	if err != nil {
		return serviceError("adding task", err), taskOutput{}, nil
	}

	return nil, taskToOutput(t), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	var tasks []*models.Task
	if input.Status != "" {
		status := models.TaskStatus(input.Status)
		switch status {
		case models.StatusBacklog, models.StatusToday, models.StatusDone:
		default:
			return errorResult(fmt.Sprintf("invalid status %q: must be one of backlog, today, done", input.Status)), listTasksOutput{}, nil
		}
		tasks = s.store.TasksByStatus(status)
	} else {
		tasks = s.store.Tasks()
	}

	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleMoveToToday(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}
	if err := s.repo.MoveToToday(input.TaskID); err != nil {
		return serviceError(fmt.Sprintf("moving task %s to today", input.TaskID), err), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("task %s moved to today", input.TaskID)}, nil
}

func (s *Server) handleMoveToBacklog(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}
	if err := s.repo.MoveToBacklog(input.TaskID); err != nil {
		return serviceError(fmt.Sprintf("moving task %s to backlog", input.TaskID), err), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("task %s moved to backlog", input.TaskID)}, nil
}

func (s *Server) handleStartFocus(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}
	if err := s.sessions.StartFocus(input.TaskID); err != nil {
		return serviceError(fmt.Sprintf("starting focus on %s", input.TaskID), err), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("focus session started on %s", input.TaskID)}, nil
}

func (s *Server) handleCompleteTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}
	if err := s.sessions.CompleteTask(input.TaskID); err != nil {
		return serviceError(fmt.Sprintf("completing task %s", input.TaskID), err), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("task %s completed", input.TaskID)}, nil
}

func (s *Server) handleStopEarly(_ context.Context, _ *gomcp.CallToolRequest, input stopEarlyInput) (*gomcp.CallToolResult, stopEarlyOutput, error) {
	checkpoint, err := s.sessions.StopEarly(input.Reason)
	if err != nil {
		return serviceError("stopping focus early", err), stopEarlyOutput{}, nil
	}

	out := stopEarlyOutput{Checkpoint: checkpoint.Content}
	consequence, lockedOut, err := s.sessions.EvaluateConsequence()
	if err != nil {
		return serviceError("applying consequence", err), stopEarlyOutput{}, nil
	}
	if consequence != nil {
		out.Consequence = fmt.Sprintf("%s: %s", consequence.Title, consequence.Content)
		out.LockedOut = lockedOut
	}
	return nil, out, nil
}

func (s *Server) handleGetProgress(_ context.Context, _ *gomcp.CallToolRequest, input getProgressInput) (*gomcp.CallToolResult, progressOutput, error) {
	if input.ParentID == "" {
		return errorResult("parent_id is required"), progressOutput{}, nil
	}
	if _, err := s.store.Get(input.ParentID); err != nil {
		return serviceError("getting progress", err), progressOutput{}, nil
	}

	p := s.repo.GetProgress(input.ParentID)
	return nil, progressOutput{Completed: p.Completed, Total: p.Total, Percentage: p.Percentage}, nil
}

func (s *Server) handleGetReport(_ context.Context, _ *gomcp.CallToolRequest, _ getReportInput) (*gomcp.CallToolResult, reportOutput, error) {
	return nil, reportOutput{Report: s.reporter.ExportTaskReport()}, nil
}

func (s *Server) handleGetAnalytics(_ context.Context, _ *gomcp.CallToolRequest, _ getAnalyticsInput) (*gomcp.CallToolResult, analyticsOutput, error) {
	a := s.reporter.GetAnalytics()
	return nil, analyticsOutput{
		TotalCompleted: a.TotalCompleted,
		TotalEstimated: a.TotalEstimated,
		TotalActual:    a.TotalActual,
		Accuracy:       a.Accuracy,
		AvgFocusTime:   a.AvgFocusTime,
	}, nil
}

func (s *Server) handleGetAccountability(_ context.Context, _ *gomcp.CallToolRequest, _ getAccountabilityInput) (*gomcp.CallToolResult, accountabilityOutput, error) {
	a := s.store.Accountability()
	focusMode, activeID := s.store.FocusMode()

	out := accountabilityOutput{
		FailedAttempts:  a.FailedAttempts,
		CurrentStreak:   a.CurrentStreak,
		LongestStreak:   a.LongestStreak,
		ReputationScore: a.ReputationScore,
		LockedOut:       a.LockedOut(time.Now()),
		FocusMode:       focusMode,
		ActiveTaskID:    activeID,
	}
	if !a.LockoutUntil.IsZero() {
		out.LockoutUntil = a.LockoutUntil.Format(time.RFC3339)
	}
	return nil, out, nil
}

// --- Helpers ---

func taskToOutput(t *models.Task) taskOutput {
	out := taskOutput{
		ID:               t.ID,
		Title:            t.Title,
		Status:           string(t.Status),
		IsMainIdea:       t.IsMainIdea,
		ParentID:         t.ParentID,
		EstimatedMinutes: t.EstimatedMinutes,
		ActualMinutes:    t.ActualMinutes,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
	}
	if !t.CompletedAt.IsZero() {
		out.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return out
}

// serviceError flattens a service failure into a tool error. Policy
// rejections keep their alert title so the coaching text survives the
// round-trip.
func serviceError(context string, err error) *gomcp.CallToolResult {
	if p := core.AsPolicy(err); p != nil {
		return errorResult(fmt.Sprintf("%s %s", p.Alert.Title, p.Alert.Content))
	}
	return errorResult(fmt.Sprintf("%s: %s", context, err))
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
