package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

// maxImportBatch is enforced locally before any remote call.
const maxImportBatch = 1000

var errBatchCap = errors.New("cannot import more than 1000 subscribers per call")

func ImportTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("import_subscribers",
				mcp.WithDescription("Bulk import up to 1000 subscribers in one call. Imports do not trigger automations."),
				mcp.WithArray("subscribers",
					mcp.Required(),
					mcp.Description("Subscriber objects with email and optional first_name, last_name, fields, tags"),
					mcp.Items(map[string]any{"type": "object"}),
				),
			),
			Call: importSubscribers,
		},
	}
}

func importSubscribers(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	entries := args.List("subscribers")
	if len(entries) == 0 {
		return nil, errors.New("subscribers parameter is required")
	}
	if len(entries) > maxImportBatch {
		return nil, errBatchCap
	}

	subs := make([]bento.SubscriberImport, 0, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("subscriber %d must be an object", i)
		}
		item := Arguments(obj)
		email, err := item.RequireEmail("email")
		if err != nil {
			return nil, fmt.Errorf("subscriber %d: %s", i, err)
		}
		subs = append(subs, bento.SubscriberImport{
			Email:     email,
			FirstName: item.String("first_name"),
			LastName:  item.String("last_name"),
			Fields:    item.Map("fields"),
			Tags:      item.StringList("tags"),
		})
	}
	return api.ImportSubscribers(ctx, subs)
}
