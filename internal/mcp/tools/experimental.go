package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bentonow/bento-mcp/internal/bento"
)

var errDomainOrIP = errors.New("provide exactly one of domain or ip")

// ExperimentalTools are read-only lookups on the platform's experimental
// endpoints.
func ExperimentalTools() []Handler {
	return []Handler{
		{
			Tool: mcp.NewTool("validate_email",
				mcp.WithDescription("Validate an email address for deliverability, optionally scoring against a name, user agent, and IP address."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address to validate"),
				),
				mcp.WithString("name",
					mcp.Description("Full name associated with the address"),
				),
				mcp.WithString("user_agent",
					mcp.Description("User agent the address was collected from"),
				),
				mcp.WithString("ip",
					mcp.Description("IP address the address was collected from"),
				),
			),
			Call: validateEmail,
		},
		{
			Tool: mcp.NewTool("guess_gender",
				mcp.WithDescription("Guess the gender of a first name."),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("First name to classify"),
				),
			),
			Call: guessGender,
		},
		{
			Tool: mcp.NewTool("geolocate_ip",
				mcp.WithDescription("Geolocate an IP address."),
				mcp.WithString("ip",
					mcp.Required(),
					mcp.Description("IP address to geolocate"),
				),
			),
			Call: geolocateIP,
		},
		{
			Tool: mcp.NewTool("check_blacklist",
				mcp.WithDescription("Check a domain or an IP address against known blacklists. Provide exactly one of the two."),
				mcp.WithString("domain",
					mcp.Description("Domain to check"),
				),
				mcp.WithString("ip",
					mcp.Description("IP address to check"),
				),
			),
			Call: checkBlacklist,
		},
		{
			Tool: mcp.NewTool("moderate_content",
				mcp.WithDescription("Run content through the platform's moderation endpoint."),
				mcp.WithString("content",
					mcp.Required(),
					mcp.Description("Content to moderate"),
				),
			),
			Call: moderateContent,
		},
	}
}

func validateEmail(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	email, err := args.RequireString("email")
	if err != nil {
		return nil, err
	}
	return api.ValidateEmail(ctx, email, args.String("name"), args.String("user_agent"), args.String("ip"))
}

func guessGender(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	name, err := args.RequireString("name")
	if err != nil {
		return nil, err
	}
	return api.GuessGender(ctx, name)
}

func geolocateIP(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	ip, err := args.RequireString("ip")
	if err != nil {
		return nil, err
	}
	return api.GeolocateIP(ctx, ip)
}

func checkBlacklist(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	domain := args.String("domain")
	ip := args.String("ip")
	if (domain == "") == (ip == "") {
		return nil, errDomainOrIP
	}
	return api.BlacklistStatus(ctx, domain, ip)
}

func moderateContent(ctx context.Context, args Arguments, api bento.Client) (any, error) {
	content, err := args.RequireString("content")
	if err != nil {
		return nil, err
	}
	return api.ModerateContent(ctx, content)
}
