package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

// CommandTools covers subscribe/unsubscribe, tag add/remove, and setting a
// custom field value on a subscriber. Each maps to one commands-endpoint call;
// optional fields ride along as add_field commands in the same call.
func CommandTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("subscribe",
				mcp.WithDescription("Subscribe an email address, optionally setting custom fields. Triggers automations on the platform asynchronously; expect a 1-3 minute delay before they run."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address to subscribe"),
				),
				mcp.WithObject("fields",
					mcp.Description("Custom field key/value pairs to set alongside the subscription"),
				),
			),
			Call: subscriptionCall(bento.CommandSubscribe),
		},
		{
			Tool: mcp.NewTool("unsubscribe",
				mcp.WithDescription("Unsubscribe an email address, optionally setting custom fields. Triggers automations on the platform asynchronously; expect a 1-3 minute delay before they run."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address to unsubscribe"),
				),
				mcp.WithObject("fields",
					mcp.Description("Custom field key/value pairs to set alongside the unsubscription"),
				),
			),
			Call: subscriptionCall(bento.CommandUnsubscribe),
		},
		{
			Tool: mcp.NewTool("add_tag",
				mcp.WithDescription("Add a tag to a subscriber by email."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address of the subscriber"),
				),
				mcp.WithString("tag",
					mcp.Required(),
					mcp.Description("Tag name to add"),
				),
			),
			Call: tagCall(bento.CommandAddTag),
		},
		{
			Tool: mcp.NewTool("remove_tag",
				mcp.WithDescription("Remove a tag from a subscriber by email."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address of the subscriber"),
				),
				mcp.WithString("tag",
					mcp.Required(),
					mcp.Description("Tag name to remove"),
				),
			),
			Call: tagCall(bento.CommandRemoveTag),
		},
		{
			Tool: mcp.NewTool("update_custom_field",
				mcp.WithDescription("Set a custom field value on a subscriber by email."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address of the subscriber"),
				),
				mcp.WithString("key",
					mcp.Required(),
					mcp.Description("Custom field key"),
				),
				mcp.WithString("value",
					mcp.Required(),
					mcp.Description("Value to set"),
				),
			),
			Call: updateCustomField,
		},
	}
}

func subscriptionCall(name bento.CommandName) CallFunc {
	return func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
		email, err := args.RequireEmail("email")
		if err != nil {
			return nil, err
		}
		cmds := []bento.Command{{Command: name, Email: email}}
		for key, value := range args.Map("fields") {
			cmds = append(cmds, bento.Command{
				Command: bento.CommandAddField,
				Email:   email,
				Query:   map[string]any{"key": key, "value": value},
			})
		}
		if _, err := api.RunCommands(ctx, cmds); err != nil {
			return nil, err
		}
		return true, nil
	}
}

func tagCall(name bento.CommandName) CallFunc {
	return func(ctx context.Context, args Arguments, api bento.Client) (any, error) {
		email, err := args.RequireEmail("email")
		if err != nil {
			return nil, err
		}
		tag, err := args.RequireString("tag")
		if err != nil {
			return nil, err
		}
		cmds := []bento.Command{{Command: name, Email: email, Query: tag}}
		if _, err := api.RunCommands(ctx, cmds); err != nil {
			return nil, err
		}
		return true, nil
	}
}

func updateCustomField(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	email, err := args.RequireEmail("email")
	if err != nil {
		return nil, err
	}
	key, err := args.RequireString("key")
	if err != nil {
		return nil, err
	}
	value, err := args.RequireString("value")
	if err != nil {
		return nil, err
	}
	cmds := []bento.Command{{
		Command: bento.CommandAddField,
		Email:   email,
		Query:   map[string]any{"key": key, "value": value},
	}}
	if _, err := api.RunCommands(ctx, cmds); err != nil {
		return nil, err
	}
	return true, nil
}
