// Package mcp exposes the Easter-egg lens as an MCP (Model Context Protocol)
// tool server, so assistants such as Claude Desktop can call it.
//
// The server offers one tool, find_easter_eggs, taking a required string
// argument "query". Each call is an independent submission against a
// throwaway history; the result is the history entry as JSON text.
//
//	orch := lens.New(chatClient, resolver)
//	if err := mcp.ServeStdio(orch); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	ai "github.com/spetersoncode/egglens"
)

// ToolName is the name of the tool registered with MCP clients.
const ToolName = "find_easter_eggs"

// Submitter answers one query into a history.
type Submitter interface {
	Submit(ctx context.Context, query string, h *ai.History) (ai.HistoryEntry, bool)
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server with the find_easter_eggs tool backed by sub.
func NewServer(sub Submitter, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "egglens",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)
	s.AddTool(easterEggTool(), handler(sub))
	return s
}

func easterEggTool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("List hidden Easter eggs, references and fun details for a movie or scene, with a TMDb poster when one is found."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description(`Movie title, indirect reference or scene, e.g. "2nd Harry Potter movie" or "tesseract scene physics"`),
		),
	)
}

func handler(sub Submitter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		var h ai.History
		entry, ok := sub.Submit(ctx, query, &h)
		if !ok {
			return mcp.NewToolResultError("query must not be empty"), nil
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// ServeStdio runs an MCP server over stdin/stdout until the client
// disconnects.
func ServeStdio(sub Submitter, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(sub, opts...))
}
