package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

const defaultBatchSizePerHour = 1000

func BroadcastTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("list_broadcasts",
				mcp.WithDescription("List broadcasts on the site."),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.ListBroadcasts(ctx)
			},
		},
		{
			Tool: mcp.NewTool("create_broadcast",
				mcp.WithDescription("Create a broadcast. Audience can be narrowed by inclusive/exclusive tags and a segment; delivery is throttled by an hourly batch size."),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Internal name of the broadcast"),
				),
				mcp.WithString("subject",
					mcp.Required(),
					mcp.Description("Email subject line"),
				),
				mcp.WithString("content",
					mcp.Required(),
					mcp.Description("Broadcast body content"),
				),
				mcp.WithString("content_type",
					mcp.Description("Content type of the body (default: html)"),
					mcp.Enum("plain", "html", "markdown"),
					mcp.DefaultString("html"),
				),
				mcp.WithString("from_name",
					mcp.Required(),
					mcp.Description("Sender display name"),
				),
				mcp.WithString("from_email",
					mcp.Required(),
					mcp.Description("Sender email address"),
				),
				mcp.WithArray("inclusive_tags",
					mcp.Description("Only send to subscribers with these tags (array or comma-separated string)"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithArray("exclusive_tags",
					mcp.Description("Exclude subscribers with these tags (array or comma-separated string)"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithString("segment_id",
					mcp.Description("Restrict the audience to a segment"),
				),
				mcp.WithNumber("batch_size_per_hour",
					mcp.Description("Maximum emails sent per hour (default: 1000)"),
					mcp.DefaultNumber(defaultBatchSizePerHour),
				),
			),
			Call: createBroadcast,
		},
	}
}

func createBroadcast(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	name, err := args.RequireString("name")
	if err != nil {
		return nil, err
	}
	subject, err := args.RequireString("subject")
	if err != nil {
		return nil, err
	}
	content, err := args.RequireString("content")
	if err != nil {
		return nil, err
	}
	fromName, err := args.RequireString("from_name")
	if err != nil {
		return nil, err
	}
	fromEmail, err := args.RequireEmail("from_email")
	if err != nil {
		return nil, err
	}

	contentType := args.String("content_type")
	if contentType == "" {
		contentType = "html"
	}
	switch contentType {
	case "plain", "html", "markdown":
	default:
		return nil, fmt.Errorf("content_type must be one of plain, html, markdown")
	}

	broadcast := bento.Broadcast{
		Name:             name,
		Subject:          subject,
		Content:          content,
		Type:             contentType,
		From:             bento.Contact{Name: fromName, Email: fromEmail},
		InclusiveTags:    args.StringList("inclusive_tags"),
		ExclusiveTags:    args.StringList("exclusive_tags"),
		SegmentID:        args.String("segment_id"),
		BatchSizePerHour: args.Int("batch_size_per_hour", defaultBatchSizePerHour),
	}
	return api.CreateBroadcasts(ctx, []bento.Broadcast{broadcast})
}
