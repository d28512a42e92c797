package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

var errTemplateUpdate = errors.New("provide a subject or html content to update")

// ContentTools covers sequences/workflows and email templates.
func ContentTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("list_sequences",
				mcp.WithDescription("List sequences (workflows) defined on the site."),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.ListSequences(ctx)
			},
		},
		{
			Tool: mcp.NewTool("get_email_template",
				mcp.WithDescription("Fetch an email template by its numeric id."),
				mcp.WithNumber("id",
					mcp.Required(),
					mcp.Description("Numeric id of the template"),
				),
			),
			Call: getEmailTemplate,
		},
		{
			Tool: mcp.NewTool("update_email_template",
				mcp.WithDescription("Update an email template's subject and/or HTML content by its numeric id. At least one of the two must be supplied."),
				mcp.WithNumber("id",
					mcp.Required(),
					mcp.Description("Numeric id of the template"),
				),
				mcp.WithString("subject",
					mcp.Description("New subject line"),
				),
				mcp.WithString("html",
					mcp.Description("New HTML content"),
				),
			),
			Call: updateEmailTemplate,
		},
	}
}

func getEmailTemplate(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	id, err := args.RequireInt("id")
	if err != nil {
		return nil, err
	}
	return api.GetEmailTemplate(ctx, id)
}

func updateEmailTemplate(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	id, err := args.RequireInt("id")
	if err != nil {
		return nil, err
	}
	subject := args.String("subject")
	html := args.String("html")
	if subject == "" && html == "" {
		return nil, errTemplateUpdate
	}
	return api.UpdateEmailTemplate(ctx, id, subject, html)
}
