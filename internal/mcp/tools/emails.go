package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

func EmailTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("send_transactional_email",
				mcp.WithDescription("Send a transactional email. The sender address must be pre-authorized on the site. Returns the number of emails queued."),
				mcp.WithString("to",
					mcp.Required(),
					mcp.Description("Recipient email address"),
				),
				mcp.WithString("from",
					mcp.Required(),
					mcp.Description("Sender email address (must be pre-authorized on the site)"),
				),
				mcp.WithString("subject",
					mcp.Required(),
					mcp.Description("Email subject line"),
				),
				mcp.WithString("html_body",
					mcp.Required(),
					mcp.Description("HTML body of the email"),
				),
				mcp.WithBoolean("transactional",
					mcp.Description("Send as transactional, bypassing subscription status (default: true)"),
					mcp.DefaultBool(true),
				),
				mcp.WithObject("personalizations",
					mcp.Description("Key/value substitutions applied to the body"),
				),
			),
			Call: sendTransactionalEmail,
		},
	}
}

func sendTransactionalEmail(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	to, err := args.RequireEmail("to")
	if err != nil {
		return nil, err
	}
	from, err := args.RequireEmail("from")
	if err != nil {
		return nil, err
	}
	subject, err := args.RequireString("subject")
	if err != nil {
		return nil, err
	}
	htmlBody, err := args.RequireString("html_body")
	if err != nil {
		return nil, err
	}

	email := bento.Email{
		To:               to,
		From:             from,
		Subject:          subject,
		HTMLBody:         htmlBody,
		Transactional:    args.Bool("transactional", true),
		Personalizations: args.Map("personalizations"),
	}
	return api.SendEmails(ctx, []bento.Email{email})
}
