// Package tools declares the MCP operations exposed by the server. Each tool
// is a thin adapter from the joke fetcher onto a single text-content result.
package tools

import (
	"context"
	"errors"

	"joke-mcp/pkg/logger"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	ErrNilServer  = errors.New("mcp server is required")
	ErrNilFetcher = errors.New("joke fetcher is required")
)

type JokeFetcher interface {
	RandomJoke(ctx context.Context) (string, error)
	JokeByCategory(ctx context.Context, category string) (string, error)
	Categories(ctx context.Context) (string, error)
	DadJoke(ctx context.Context) (string, error)
}

// Register adds the four joke tools to the MCP server.
func Register(s *server.MCPServer, f JokeFetcher) error {
	if s == nil {
		return ErrNilServer
	}
	if f == nil {
		return ErrNilFetcher
	}

	s.AddTool(mcp.NewTool("get_chuck_joke",
		mcp.WithDescription("Get a random Chuck Norris joke"),
	), chuckJokeHandler(f))

	s.AddTool(mcp.NewTool("get_chuck_joke_by_category",
		mcp.WithDescription("Get a random Chuck Norris joke from a specific category"),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category of the Chuck Norris joke"),
		),
	), chuckJokeByCategoryHandler(f))

	s.AddTool(mcp.NewTool("get_chuck_categories",
		mcp.WithDescription("Get all available categories for Chuck Norris jokes"),
	), chuckCategoriesHandler(f))

	s.AddTool(mcp.NewTool("get_dad_joke",
		mcp.WithDescription("Get a random dad joke"),
	), dadJokeHandler(f))

	return nil
}

func chuckJokeHandler(f JokeFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		joke, err := f.RandomJoke(ctx)
		if err != nil {
			logger.Error("Failed to fetch chuck joke", logger.Err(err))
			return mcp.NewToolResultError("Error fetching joke: " + err.Error()), nil
		}
		return mcp.NewToolResultText(joke), nil
	}
}

func chuckJokeByCategoryHandler(f JokeFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category, err := req.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		joke, err := f.JokeByCategory(ctx, category)
		if err != nil {
			logger.Error("Failed to fetch chuck joke by category",
				logger.Err(err),
				logger.String("category", category),
			)
			return mcp.NewToolResultError("Error fetching joke: " + err.Error()), nil
		}
		return mcp.NewToolResultText(joke), nil
	}
}

func chuckCategoriesHandler(f JokeFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := f.Categories(ctx)
		if err != nil {
			logger.Error("Failed to fetch chuck categories", logger.Err(err))
			return mcp.NewToolResultError("Error fetching categories: " + err.Error()), nil
		}
		return mcp.NewToolResultText(categories), nil
	}
}

func dadJokeHandler(f JokeFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		joke, err := f.DadJoke(ctx)
		if err != nil {
			logger.Error("Failed to fetch dad joke", logger.Err(err))
			return mcp.NewToolResultError("Error fetching joke: " + err.Error()), nil
		}
		return mcp.NewToolResultText(joke), nil
	}
}
