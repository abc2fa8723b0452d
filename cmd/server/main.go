package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"joke-mcp/internal/config"
	"joke-mcp/internal/fetcher"
	"joke-mcp/internal/tools"
	"joke-mcp/internal/web"
	"joke-mcp/pkg/logger"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "joke-mcp"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.LogLevel, nil)
	logger.Info("Starting joke-mcp",
		logger.String("app", cfg.App.Name),
		logger.String("environment", cfg.App.Environment),
	)

	jokes := fetcher.New(cfg.Upstream)

	mcpServer := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)
	if err := tools.Register(mcpServer, jokes); err != nil {
		logger.Error("Failed to initialize MCP server", logger.Err(err))
		os.Exit(1)
	}
	logger.Info("MCP tools registered")

	streamable := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	srv := web.New(jokes, streamable, cfg.Stream)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("HTTP server starting", logger.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down HTTP server", logger.Err(err))
	}

	logger.Info("Server stopped gracefully")
}
