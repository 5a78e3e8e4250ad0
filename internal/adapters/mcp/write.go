package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"forwardtask/internal/adapters/notify"
	"forwardtask/internal/adapters/preview"
	"forwardtask/internal/application/commands"
)

// RegisterWriteTools adds the tools that modify notes or settings.
func RegisterWriteTools(s *server.MCPServer, ws Workspace) {
	s.AddTool(moveTaskTool(), moveTaskHandler(ws))
	s.AddTool(addTaskTool(), addTaskHandler(ws))
	s.AddTool(setSectionHeaderTool(), setSectionHeaderHandler(ws))
}

// --- move_task ---

func moveTaskTool() mcp.Tool {
	return mcp.NewTool("move_task",
		mcp.WithDescription("Move the task on a line of a note into a daily note. The original line is marked '[>]'."),
		mcp.WithString("file",
			mcp.Description("Note path, absolute or relative to the vault"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("1-based line of the task"),
			mcp.Required(),
		),
		mcp.WithNumber("days",
			mcp.Description("Target daily note as days from today: 0 today, 1 tomorrow (default 0)"),
		),
		mcp.WithBoolean("next_day",
			mcp.Description("Move to the day after the daily note the task is in; overrides days"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Show the change to the daily note without writing anything"),
		),
	)
}

func moveTaskHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ed, err := ws.OpenEditor(ctx, req.GetString("file", ""), req.GetInt("line", 0)-1)
		if err != nil {
			return toolError(err)
		}

		notices := notify.NewCollector()
		svc := ws.Services(ed, notices)
		dryRun := req.GetBool("dry_run", false)

		var result *commands.MoveTaskResult
		if req.GetBool("next_day", false) {
			cmd := commands.NewMoveTaskRelativeCommand(svc)
			cmd.DryRun = dryRun
			result, err = cmd.Execute(ctx)
		} else {
			cmd := commands.NewMoveTaskCommand(svc, req.GetInt("days", 0))
			cmd.DryRun = dryRun
			result, err = cmd.Execute(ctx)
		}
		if err != nil {
			return mcp.NewToolResultError(notices.Last()), nil
		}

		var sb strings.Builder
		sb.WriteString(notices.Last())
		if result.DryRun {
			sb.WriteString("\n\n")
			sb.WriteString(preview.Render(result.Before, result.After, 2))
		} else if result.NextCursor >= 0 {
			fmt.Fprintf(&sb, "\nNext open task: line %d", result.NextCursor+1)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- add_task ---

func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Add a new open task to a daily note."),
		mcp.WithString("text",
			mcp.Description("Task text"),
			mcp.Required(),
		),
		mcp.WithNumber("days",
			mcp.Description("Target daily note as days from today (default 0)"),
		),
	)
}

func addTaskHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddTaskCommand(ws.Services(nil, nil), req.GetString("text", ""), req.GetInt("days", 0))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Destination)), nil
	}
}

// --- set_section_header ---

func setSectionHeaderTool() mcp.Tool {
	return mcp.NewTool("set_section_header",
		mcp.WithDescription("Set the section header moved tasks are inserted under. An empty header appends at the end of the note."),
		mcp.WithString("header",
			mcp.Description("Header line, e.g. '## Tasks'"),
		),
	)
}

func setSectionHeaderHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetSectionHeaderCommand(ws.Services(nil, nil).Settings, req.GetString("header", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
