package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

var errEmailOrUUID = errors.New("provide exactly one of email or uuid")

// SubscriberTools covers subscriber lookup and create/upsert.
func SubscriberTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("get_subscriber",
				mcp.WithDescription("Look up a subscriber by email address or by UUID. Provide exactly one of the two."),
				mcp.WithString("email",
					mcp.Description("Email address of the subscriber"),
				),
				mcp.WithString("uuid",
					mcp.Description("UUID of the subscriber"),
				),
			),
			Call: getSubscriber,
		},
		{
			Tool: mcp.NewTool("create_subscriber",
				mcp.WithDescription("Create or update a subscriber by email, optionally setting custom fields and adding or removing tags in the same call."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address of the subscriber"),
				),
				mcp.WithString("first_name",
					mcp.Description("First name"),
				),
				mcp.WithString("last_name",
					mcp.Description("Last name"),
				),
				mcp.WithObject("fields",
					mcp.Description("Custom field key/value pairs to set"),
				),
				mcp.WithArray("add_tags",
					mcp.Description("Tags to add (array or comma-separated string)"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithArray("remove_tags",
					mcp.Description("Tags to remove (array or comma-separated string)"),
					mcp.Items(map[string]any{"type": "string"}),
				),
			),
			Call: createSubscriber,
		},
	}
}

func getSubscriber(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	email := args.String("email")
	uuid := args.String("uuid")
	if (email == "") == (uuid == "") {
		return nil, errEmailOrUUID
	}
	id := email
	if id == "" {
		id = uuid
	}
	return api.FindSubscriber(ctx, id)
}

func createSubscriber(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	email, err := args.RequireEmail("email")
	if err != nil {
		return nil, err
	}
	sub := bento.SubscriberImport{
		Email:      email,
		FirstName:  args.String("first_name"),
		LastName:   args.String("last_name"),
		Fields:     args.Map("fields"),
		Tags:       args.StringList("add_tags"),
		RemoveTags: args.StringList("remove_tags"),
	}
	return api.ImportSubscribers(ctx, []bento.SubscriberImport{sub})
}
