package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bentonow/bento-mcp/internal/bento"
	"github.com/bentonow/bento-mcp/internal/config"
	"github.com/bentonow/bento-mcp/internal/logging"
	"github.com/bentonow/bento-mcp/internal/mcp/tools"
)

type Config struct {
	Handlers   []tools.Handler
	Dispatcher *tools.Dispatcher
	Options    []server.StreamableHTTPOption
	Log        logging.Logger
}

// DefaultConfig wires the full tool registry to process configuration and the
// per-call SDK client. Invocations are stateless, so HTTP mode is stateless too.
func DefaultConfig() Config {
	log := logging.New(logging.DefaultLogger()).WithName(serverName)
	return Config{
		Handlers: tools.All(),
		Dispatcher: &tools.Dispatcher{
			Credentials: config.BentoCredentials,
			Connect:     bento.Connect,
			Log:         log.WithName("tools"),
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Log: log,
	}
}
