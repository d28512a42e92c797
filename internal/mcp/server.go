package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bentonow/bento-mcp/internal/logging"
)

const (
	serverName    = "bento-mcp"
	serverVersion = "1.0.0"
)

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	log     logging.Logger
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	for _, h := range cfg.Handlers {
		mcpServer.AddTool(h.Tool, cfg.Dispatcher.Adapt(h))
	}
	cfg.Log.Info("registered tools", "count", len(cfg.Handlers))

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		log:     cfg.Log,
	}
}

// ServeStdio blocks serving the protocol over stdin/stdout until the host
// closes the stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
