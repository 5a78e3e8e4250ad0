package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"forwardtask/internal/application/commands"
	"forwardtask/internal/domain"
	"forwardtask/internal/ports"
)

// Workspace is what the tools need from the host process
type Workspace interface {
	// OpenEditor loads a note with the cursor on a 0-based line
	OpenEditor(ctx context.Context, path string, line int) (ports.Editor, error)
	Services(editor ports.Editor, notifier ports.Notifier) commands.Services
}

// RegisterReadTools adds the tools that never modify the vault.
func RegisterReadTools(s *server.MCPServer, ws Workspace) {
	s.AddTool(previewInsertTool(), previewInsertHandler(ws))
	s.AddTool(nextOpenTaskTool(), nextOpenTaskHandler(ws))
	s.AddTool(getSectionHeaderTool(), getSectionHeaderHandler(ws))
	s.AddTool(historyTool(), historyHandler(ws))
}

// --- preview_insert ---

func previewInsertTool() mcp.Tool {
	return mcp.NewTool("preview_insert",
		mcp.WithDescription("Show where a task would be inserted into a note's text, without touching any file."),
		mcp.WithString("document",
			mcp.Description("Full text of the destination note"),
			mcp.Required(),
		),
		mcp.WithString("task",
			mcp.Description("Task text, e.g. '- [ ] Buy milk'. Plain text is wrapped as an open task."),
			mcp.Required(),
		),
		mcp.WithString("section_header",
			mcp.Description("Section header to insert under. Omit to use the configured header; pass an empty string to append at the end."),
		),
	)
}

func previewInsertHandler(ws Workspace) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document := req.GetString("document", "")
		task := strings.TrimSpace(req.GetString("task", ""))
		if task == "" {
			return toolError(fmt.Errorf("task is required"))
		}
		if t, ok := domain.Recognize(task); ok {
			task = domain.ToPlainTask(t)
		} else {
			task = domain.PlainTask(task)
		}

		header := ws.Services(nil, nil).Settings.SectionHeader()
		if args := req.GetArguments(); args != nil {
			if v, ok := args["section_header"].(string); ok {
				header = v
			}
		}

		policy := domain.SelectPolicy(domain.SplitLines(document), header)
		out := domain.Insert(document, task, header)
		return mcp.NewToolResultText(fmt.Sprintf("Policy: %s\n\n%s", policy, out)), nil
	}
}

// --- next_open_task ---

func nextOpenTaskTool() mcp.Tool {
	return mcp.NewTool("next_open_task",
		mcp.WithDescription("Find the first open task ('- [ ] ...') after a line of a note."),
		mcp.WithString("file",
			mcp.Description("Note path, absolute or relative to the vault"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("1-based line to search after"),
			mcp.Required(),
		),
	)
}

func nextOpenTaskHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := req.GetInt("line", 0)
		ed, err := ws.OpenEditor(ctx, req.GetString("file", ""), max(line-1, 0))
		if err != nil {
			return toolError(err)
		}

		next, ok := domain.FindNextOpenTask(ed.Lines(), line-1)
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("No open task after line %d.", line)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%d: %s", next+1, ed.Line(next))), nil
	}
}

// --- get_section_header ---

func getSectionHeaderTool() mcp.Tool {
	return mcp.NewTool("get_section_header",
		mcp.WithDescription("Return the section header moved tasks are inserted under."),
	)
}

func getSectionHeaderHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewGetSectionHeaderCommand(ws.Services(nil, nil).Settings).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("move_history",
		mcp.WithDescription("List recent task moves from the journal, newest first. Pending moves were interrupted after the daily note was written."),
		mcp.WithString("state",
			mcp.Description("Only moves in this state"),
			mcp.Enum("pending", "completed", "failed"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of moves (default 20)"),
		),
	)
}

func historyHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := domain.HistoryFilter{
			State: domain.MoveState(req.GetString("state", "")),
			Limit: req.GetInt("limit", 20),
		}

		result, err := commands.NewHistoryCommand(ws.Services(nil, nil).Journal, filter).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Records) == 0 {
			return mcp.NewToolResultText("No moves."), nil
		}

		var sb strings.Builder
		for _, r := range result.Records {
			sb.WriteString(formatRecord(r))
			sb.WriteString("\n")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func formatRecord(r domain.MoveRecord) string {
	s := fmt.Sprintf("%s [%s] %s:%d -> %s  %s",
		r.CreatedAt.Local().Format("2006-01-02 15:04"), r.State, r.Source, r.SourceLine+1, r.Destination, r.TaskText)
	if r.Error != "" {
		s += "  (" + r.Error + ")"
	}
	return s
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
