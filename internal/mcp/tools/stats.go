package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

func StatsTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("get_site_stats",
				mcp.WithDescription("Fetch aggregate statistics for the site."),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.SiteStats(ctx)
			},
		},
		{
			Tool: mcp.NewTool("get_segment_stats",
				mcp.WithDescription("Fetch statistics for a segment."),
				mcp.WithString("segment_id",
					mcp.Description("Segment identifier"),
				),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.SegmentStats(ctx, args.String("segment_id"))
			},
		},
		{
			Tool: mcp.NewTool("get_report_stats",
				mcp.WithDescription("Fetch statistics for a report."),
				mcp.WithString("report_id",
					mcp.Description("Report identifier"),
				),
			),
			Call: func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
				return api.ReportStats(ctx, args.String("report_id"))
			},
		},
	}
}
