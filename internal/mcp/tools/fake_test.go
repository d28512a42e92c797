package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bentonow/bento-mcp/internal/bento"
)

// fakeClient records delegated calls. Methods not overridden panic through the
// embedded nil interface, which fails any test that reaches an unexpected
// remote call.
type fakeClient struct {
	bento.Client

	findArgs   []string
	findResult json.RawMessage

	commands [][]bento.Command
	events   [][]bento.Event
	imports  [][]bento.SubscriberImport
	emails   [][]bento.Email

	templateUpdates []templateUpdate
	blacklistArgs   [][2]string
}

type templateUpdate struct {
	id            int
	subject, html string
}

func (f *fakeClient) FindSubscriber(ctx context.Context, emailOrUUID string) (json.RawMessage, error) {
	f.findArgs = append(f.findArgs, emailOrUUID)
	return f.findResult, nil
}

func (f *fakeClient) RunCommands(ctx context.Context, cmds []bento.Command) (int, error) {
	f.commands = append(f.commands, cmds)
	return len(cmds), nil
}

func (f *fakeClient) TrackEvents(ctx context.Context, events []bento.Event) (int, error) {
	f.events = append(f.events, events)
	return len(events), nil
}

func (f *fakeClient) ImportSubscribers(ctx context.Context, subs []bento.SubscriberImport) (int, error) {
	f.imports = append(f.imports, subs)
	return len(subs), nil
}

func (f *fakeClient) SendEmails(ctx context.Context, emails []bento.Email) (int, error) {
	f.emails = append(f.emails, emails)
	return len(emails), nil
}

func (f *fakeClient) UpdateEmailTemplate(ctx context.Context, id int, subject, html string) (json.RawMessage, error) {
	f.templateUpdates = append(f.templateUpdates, templateUpdate{id: id, subject: subject, html: html})
	return json.RawMessage(`{"updated":true}`), nil
}

func (f *fakeClient) BlacklistStatus(ctx context.Context, domain, ip string) (json.RawMessage, error) {
	f.blacklistArgs = append(f.blacklistArgs, [2]string{domain, ip})
	return json.RawMessage(`{"blacklisted":false}`), nil
}

func handlerByName(t *testing.T, name string) Handler {
	t.Helper()
	for _, h := range All() {
		if h.Tool.Name == name {
			return h
		}
	}
	t.Fatalf("tool %s not registered", name)
	return Handler{}
}
