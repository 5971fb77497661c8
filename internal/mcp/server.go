package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"
)

// Config assembles one adapter server: a name/version pair and the tool set
// it exposes.
type Config struct {
	Name    string
	Version string
	Tools   []server.ServerTool
	Options []server.StreamableHTTPOption
}

// Server bundles the MCP core with its streamable HTTP front end. Stdio and
// HTTP serve the same tool set; which one runs is the entrypoint's choice.
type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(cfg.Tools...)

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
