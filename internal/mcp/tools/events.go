package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

const defaultCurrency = "USD"

// EventTools covers generic event tracking and purchase tracking. A purchase
// is an event of type "$purchase" whose order id acts as the dedup key;
// amounts are forwarded in minor units exactly as given.
func EventTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("track_event",
				mcp.WithDescription("Track a custom event for a subscriber, optionally with field and detail maps."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address of the subscriber"),
				),
				mcp.WithString("type",
					mcp.Required(),
					mcp.Description("Event type, e.g. '$completed_onboarding'"),
				),
				mcp.WithObject("fields",
					mcp.Description("Field key/value pairs to set on the subscriber"),
				),
				mcp.WithObject("details",
					mcp.Description("Arbitrary event detail key/value pairs"),
				),
			),
			Call: trackEvent,
		},
		{
			Tool: mcp.NewTool("track_purchase",
				mcp.WithDescription("Track a purchase for a subscriber. The order id deduplicates repeat submissions; the amount is in minor units (cents)."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address of the purchaser"),
				),
				mcp.WithString("order_id",
					mcp.Required(),
					mcp.Description("Unique order identifier used as the dedup key"),
				),
				mcp.WithNumber("amount",
					mcp.Required(),
					mcp.Description("Purchase amount in minor units (e.g. cents)"),
				),
				mcp.WithString("currency",
					mcp.Description("ISO currency code (default: USD)"),
				),
				mcp.WithArray("cart_items",
					mcp.Description("Optional cart line items"),
					mcp.Items(map[string]any{"type": "object"}),
				),
			),
			Call: trackPurchase,
		},
	}
}

func trackEvent(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	email, err := args.RequireEmail("email")
	if err != nil {
		return nil, err
	}
	eventType, err := args.RequireString("type")
	if err != nil {
		return nil, err
	}
	event := bento.Event{
		Email:   email,
		Type:    eventType,
		Fields:  args.Map("fields"),
		Details: args.Map("details"),
	}
	return api.TrackEvents(ctx, []bento.Event{event})
}

func trackPurchase(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	email, err := args.RequireEmail("email")
	if err != nil {
		return nil, err
	}
	orderID, err := args.RequireString("order_id")
	if err != nil {
		return nil, err
	}
	amount, err := args.RequireInt("amount")
	if err != nil {
		return nil, err
	}
	currency := args.String("currency")
	if currency == "" {
		currency = defaultCurrency
	}

	details := map[string]any{
		"unique": map[string]any{"key": orderID},
		"value":  map[string]any{"currency": currency, "amount": amount},
	}
	if items := args.List("cart_items"); len(items) > 0 {
		details["cart"] = map[string]any{"items": items}
	}

	event := bento.Event{
		Email:   email,
		Type:    "$purchase",
		Details: details,
	}
	return api.TrackEvents(ctx, []bento.Event{event})
}
