package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

func FormTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("get_form_responses",
				mcp.WithDescription("List responses submitted to a form."),
				mcp.WithString("form_id",
					mcp.Required(),
					mcp.Description("Identifier of the form"),
				),
			),
			Call: getFormResponses,
		},
	}
}

func getFormResponses(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	formID, err := args.RequireString("form_id")
	if err != nil {
		return nil, err
	}
	return api.FormResponses(ctx, formID)
}
