package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bentonow/bento-mcp/internal/bento"
	"github.com/bentonow/bento-mcp/internal/logging"
)

// CallFunc performs the single delegated call of a tool against validated
// arguments. Returning an error surfaces it as the tool's text result; the
// returned value goes through FormatResult.
type CallFunc func(ctx context.Context, args Arguments, api bento.Client) (any, error)

// Handler pairs a tool definition with its call. Everything else a tool does
// (credential resolution, client construction, formatting, error conversion)
// lives in the Dispatcher so it is written exactly once.
type Handler struct {
	Tool mcp.Tool
	Call CallFunc
}

// Dispatcher owns the invocation pipeline shared by every tool:
// validate → resolve credentials → connect → delegate → format → catch.
type Dispatcher struct {
	Credentials func() bento.Credentials
	Connect     func(bento.Credentials) (bento.Client, error)
	Log         logging.Logger
}

// Adapt wraps a Handler into the MCP handler signature. No fault escapes the
// boundary: every invocation yields a text result.
func (d *Dispatcher) Adapt(h Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				d.Log.Info("tool panicked", "tool", h.Tool.Name, "panic", fmt.Sprintf("%v", r))
				res = mcp.NewToolResultError(fmt.Sprintf("%v", r))
				err = nil
			}
		}()

		creds := d.Credentials()
		if verr := creds.Validate(); verr != nil {
			return mcp.NewToolResultError(verr.Error()), nil
		}

		api, cerr := d.Connect(creds)
		if cerr != nil {
			return mcp.NewToolResultError(cerr.Error()), nil
		}

		out, callErr := h.Call(ctx, Arguments(req.GetArguments()), api)
		if callErr != nil {
			d.Log.Debug("tool call failed", "tool", h.Tool.Name, "error", callErr.Error())
			return mcp.NewToolResultError(callErr.Error()), nil
		}
		return mcp.NewToolResultText(FormatResult(out)), nil
	}
}
