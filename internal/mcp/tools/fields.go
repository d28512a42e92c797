package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

func FieldTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("list_fields",
				mcp.WithDescription("List all custom fields defined on the site."),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.ListFields(ctx)
			},
		},
		{
			Tool: mcp.NewTool("create_field",
				mcp.WithDescription("Create a new custom field by key."),
				mcp.WithString("key",
					mcp.Required(),
					mcp.Description("Key of the custom field to create"),
				),
			),
			Call: createField,
		},
	}
}

func createField(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	key, err := args.RequireString("key")
	if err != nil {
		return nil, err
	}
	return api.CreateField(ctx, key)
}
