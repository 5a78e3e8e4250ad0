package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "forwardtask/internal/adapters/mcp"
	"forwardtask/internal/app"
)

func main() {
	vaultFlag := flag.String("vault", "", "path to the vault (default $FORWARDTASK_VAULT, then config)")
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr
	a, err := app.Open(app.Options{ConfigPath: *configFlag, Vault: *vaultFlag, LogOutput: os.Stderr})
	if err != nil {
		log.Fatalf("forwardtask-mcp: %v", err)
	}
	defer a.Close()

	mcpServer := server.NewMCPServer(
		"forwardtask-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, a)
	mcpadapter.RegisterWriteTools(mcpServer, a)

	if err := server.ServeStdio(mcpServer); err != nil {
		a.Close()
		log.Fatalf("forwardtask-mcp: %v", err)
	}
}
