package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "takenotes/internal/adapters/mcp"
	"takenotes/internal/adapters/sqlite"
	"takenotes/internal/application"
	"takenotes/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dbFlag := flag.String("db", cfg.DBPath, "path to the label database")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr
	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("takenotes-mcp: %v", err)
	}
	defer closer.Close()

	store, err := sqlite.Open(*dbFlag)
	if err != nil {
		log.Fatalf("takenotes-mcp: %v", err)
	}
	defer store.Close()

	labels := application.NewLabels(store, logger)
	if err := labels.Load(context.Background()); err != nil {
		log.Fatalf("takenotes-mcp: failed to load labels: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"takenotes-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, labels)
	mcpadapter.RegisterWriteTools(mcpServer, labels)

	logger.Info("serving MCP over stdio", "db", store.Path())
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("takenotes-mcp: %v", err)
	}
}
