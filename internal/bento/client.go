package bento

import (
	"context"
	"encoding/json"
)

// Client is the narrow surface tools delegate to. Read operations return the
// remote payload verbatim as json.RawMessage so downstream formatting can
// preserve the remote field order; write operations return a count or a flag.
//
// Exactly one delegated call happens per tool invocation, so no method here
// composes others.
type Client interface {
	FindSubscriber(ctx context.Context, emailOrUUID string) (json.RawMessage, error)
	ImportSubscribers(ctx context.Context, subs []SubscriberImport) (int, error)
	RunCommands(ctx context.Context, cmds []Command) (int, error)

	ListTags(ctx context.Context) (json.RawMessage, error)
	CreateTag(ctx context.Context, name string) (json.RawMessage, error)
	ListFields(ctx context.Context) (json.RawMessage, error)
	CreateField(ctx context.Context, key string) (json.RawMessage, error)

	TrackEvents(ctx context.Context, events []Event) (int, error)
	SendEmails(ctx context.Context, emails []Email) (int, error)

	ListBroadcasts(ctx context.Context) (json.RawMessage, error)
	CreateBroadcasts(ctx context.Context, broadcasts []Broadcast) (bool, error)

	SiteStats(ctx context.Context) (json.RawMessage, error)
	SegmentStats(ctx context.Context, segmentID string) (json.RawMessage, error)
	ReportStats(ctx context.Context, reportID string) (json.RawMessage, error)

	ListSequences(ctx context.Context) (json.RawMessage, error)
	GetEmailTemplate(ctx context.Context, id int) (json.RawMessage, error)
	UpdateEmailTemplate(ctx context.Context, id int, subject, html string) (json.RawMessage, error)
	FormResponses(ctx context.Context, formID string) (json.RawMessage, error)

	ValidateEmail(ctx context.Context, email, name, userAgent, ip string) (bool, error)
	GuessGender(ctx context.Context, name string) (json.RawMessage, error)
	GeolocateIP(ctx context.Context, ip string) (json.RawMessage, error)
	BlacklistStatus(ctx context.Context, domain, ip string) (json.RawMessage, error)
	ModerateContent(ctx context.Context, content string) (json.RawMessage, error)
}
