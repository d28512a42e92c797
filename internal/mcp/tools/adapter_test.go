package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
	"github.com/bentonow/bento-mcp/internal/logging"
)

func testDispatcher(creds bento.Credentials, connected *bool) *Dispatcher {
	return &Dispatcher{
		Credentials: func() bento.Credentials { return creds },
		Connect: func(bento.Credentials) (bento.Client, error) {
			if connected != nil {
				*connected = true
			}
			return &fakeClient{}, nil
		},
		Log: logging.New(logr.Discard()),
	}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("expected content in result")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestAdapt_MissingCredentialsNamesAllValues(t *testing.T) {
	connected := false
	called := false
	d := testDispatcher(bento.Credentials{}, &connected)

	h := Handler{
		Tool: mcp.NewTool("noop"),
		Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
			called = true
			return nil, nil
		},
	}

	res, err := d.Adapt(h)(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	text := resultText(t, res)
	for _, name := range []string{"BENTO_PUBLISHABLE_KEY", "BENTO_SECRET_KEY", "BENTO_SITE_UUID"} {
		if !strings.Contains(text, name) {
			t.Fatalf("expected %s in %q", name, text)
		}
	}
	if connected || called {
		t.Fatalf("expected no client construction or delegated call")
	}
}

func TestAdapt_CallErrorBecomesTextResult(t *testing.T) {
	d := testDispatcher(bento.Credentials{PublishableKey: "pk", SecretKey: "sk", SiteUUID: "site"}, nil)

	h := Handler{
		Tool: mcp.NewTool("failing"),
		Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
			return nil, errors.New("remote call failed")
		},
	}

	res, err := d.Adapt(h)(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := resultText(t, res); got != "remote call failed" {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestAdapt_PanicIsCaughtAtBoundary(t *testing.T) {
	d := testDispatcher(bento.Credentials{PublishableKey: "pk", SecretKey: "sk", SiteUUID: "site"}, nil)

	h := Handler{
		Tool: mcp.NewTool("panicking"),
		Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
			panic("unexpected fault")
		},
	}

	res, err := d.Adapt(h)(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := resultText(t, res); !strings.Contains(got, "unexpected fault") {
		t.Fatalf("expected panic value in %q", got)
	}
}

func TestAdapt_FormatsDelegatedResult(t *testing.T) {
	d := testDispatcher(bento.Credentials{PublishableKey: "pk", SecretKey: "sk", SiteUUID: "site"}, nil)

	h := Handler{
		Tool: mcp.NewTool("reading"),
		Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
			return json.RawMessage(`{"id":1}`), nil
		},
	}

	res, err := d.Adapt(h)(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "{\n  \"id\": 1\n}" {
		t.Fatalf("unexpected text %q", got)
	}
}
