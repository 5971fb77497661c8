package mcp

import (
	"context"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func TestNewWiresToolsAndHTTPHandler(t *testing.T) {
	noop := server.ServerTool{
		Tool: mcpgo.NewTool("noop", mcpgo.WithDescription("does nothing")),
		Handler: func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			return mcpgo.NewToolResultText("ok"), nil
		},
	}

	srv := New(Config{Name: "test-adapter", Version: "0.0.1", Tools: []server.ServerTool{noop}})
	if srv.MCP == nil {
		t.Fatal("MCP core must be initialized")
	}
	if srv.Handler == nil || srv.HTTP == nil {
		t.Fatal("HTTP front end must be initialized")
	}
}
