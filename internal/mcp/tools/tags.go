package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

func TagTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("list_tags",
				mcp.WithDescription("List all tags defined on the site."),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.ListTags(ctx)
			},
		},
		{
			Tool: mcp.NewTool("create_tag",
				mcp.WithDescription("Create a new tag by name."),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Name of the tag to create"),
				),
			),
			Call: createTag,
		},
	}
}

func createTag(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	name, err := args.RequireString("name")
	if err != nil {
		return nil, err
	}
	return api.CreateTag(ctx, name)
}
