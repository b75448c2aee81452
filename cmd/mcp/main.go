package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/prompt-playground/internal/mcpadapter"
	"github.com/povarna/prompt-playground/internal/setup"
	setuplog "github.com/povarna/prompt-playground/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging; stdout carries the MCP transport
	logger := setuplog.New(os.Stderr)
	log.Logger = logger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "prompt-playground",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_technique",
		Description: "Run one prompting technique (zero-shot, few-shot, chain-of-thought, role-playing, persona-based, ReAct, self-consistency, tree-of-thoughts) and return the generated text with token and cost accounting",
	}, mcpadapter.NewRunTechniqueHandler(deps.Registry))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_techniques",
		Description: "Run several prompting techniques against the same prompt and return their outputs side by side with total tokens and cost",
	}, mcpadapter.NewCompareHandler(deps.Comparer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fill_template",
		Description: "Fill a prompt template from the built-in catalog (translation, summarization, code, creative writing, analysis, business) with caller-supplied values",
	}, mcpadapter.NewFillTemplateHandler())

	return server
}
