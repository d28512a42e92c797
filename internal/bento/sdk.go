package bento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	sdk "github.com/bentonow/bento-golang-sdk"
)

const (
	requestTimeout = 30 * time.Second
	fetchBaseURL   = "https://app.bentonow.com/api/v1"
)

var _ Client = (*sdkClient)(nil)

// Connect builds a client for one invocation. Construction is cheap and
// nothing is shared across invocations, so callers connect per call.
func Connect(creds Credentials) (Client, error) {
	api, err := sdk.NewClient(&sdk.Config{
		PublishableKey: creds.PublishableKey,
		SecretKey:      creds.SecretKey,
		SiteUUID:       creds.SiteUUID,
		Timeout:        requestTimeout,
	})
	if err != nil {
		return nil, err
	}
	return &sdkClient{
		api:     api,
		creds:   creds,
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: fetchBaseURL,
	}, nil
}

// sdkClient adapts the vendor SDK to the Client interface. Operations the SDK
// does not expose (uuid lookup, raw commands, sequences, templates, form
// responses) go through fetch with the same credential triple.
type sdkClient struct {
	api     *sdk.Client
	creds   Credentials
	http    *http.Client
	baseURL string
}

func raw(v any, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	b, merr := json.Marshal(v)
	if merr != nil {
		return nil, merr
	}
	return b, nil
}

// resultsCount reads the platform's {"results": N} acknowledgment, falling
// back when the payload has no count.
func resultsCount(payload json.RawMessage, fallback int) int {
	var out struct {
		Results int `json:"results"`
	}
	if err := json.Unmarshal(payload, &out); err == nil && out.Results > 0 {
		return out.Results
	}
	return fallback
}

// FindSubscriber accepts an email or a uuid. The SDK only takes emails, so
// uuid lookups go through the subscribers fetch endpoint.
func (c *sdkClient) FindSubscriber(ctx context.Context, emailOrUUID string) (json.RawMessage, error) {
	if _, err := mail.ParseAddress(emailOrUUID); err == nil {
		return raw(c.api.FindSubscriber(ctx, emailOrUUID))
	}
	params := url.Values{}
	params.Set("uuid", emailOrUUID)
	return c.fetch(ctx, http.MethodGet, "/fetch/subscribers", params, nil)
}

func (c *sdkClient) ImportSubscribers(ctx context.Context, subs []SubscriberImport) (int, error) {
	in := make([]*sdk.SubscriberInput, 0, len(subs))
	for _, s := range subs {
		in = append(in, &sdk.SubscriberInput{
			Email:      s.Email,
			FirstName:  s.FirstName,
			LastName:   s.LastName,
			Tags:       s.Tags,
			RemoveTags: s.RemoveTags,
			Fields:     s.Fields,
		})
	}
	// The import endpoint acknowledges without a count; report the batch size.
	if err := c.api.ImportSubscribers(ctx, in); err != nil {
		return 0, err
	}
	return len(in), nil
}

// RunCommands posts to the commands endpoint directly: the SDK's command API
// takes a string query, which cannot carry the {key, value} payload of field
// commands, and it rejects the empty query of subscribe/unsubscribe.
func (c *sdkClient) RunCommands(ctx context.Context, cmds []Command) (int, error) {
	type commandPayload struct {
		Command string `json:"command"`
		Email   string `json:"email"`
		Query   any    `json:"query,omitempty"`
	}
	list := make([]commandPayload, 0, len(cmds))
	for _, cmd := range cmds {
		list = append(list, commandPayload{
			Command: string(cmd.Command),
			Email:   cmd.Email,
			Query:   cmd.Query,
		})
	}
	payload, err := c.fetch(ctx, http.MethodPost, "/fetch/commands", nil, map[string]any{"command": list})
	if err != nil {
		return 0, err
	}
	return resultsCount(payload, len(list)), nil
}

func (c *sdkClient) ListTags(ctx context.Context) (json.RawMessage, error) {
	return raw(c.api.GetTags(ctx))
}

func (c *sdkClient) CreateTag(ctx context.Context, name string) (json.RawMessage, error) {
	return raw(c.api.CreateTag(ctx, name))
}

func (c *sdkClient) ListFields(ctx context.Context) (json.RawMessage, error) {
	return raw(c.api.GetFields(ctx))
}

func (c *sdkClient) CreateField(ctx context.Context, key string) (json.RawMessage, error) {
	return raw(c.api.CreateField(ctx, key))
}

func (c *sdkClient) TrackEvents(ctx context.Context, events []Event) (int, error) {
	data := make([]sdk.EventData, 0, len(events))
	for _, ev := range events {
		data = append(data, sdk.EventData{
			Type:    ev.Type,
			Email:   ev.Email,
			Fields:  ev.Fields,
			Details: ev.Details,
		})
	}
	// The events endpoint acknowledges without a count; report the batch size.
	if err := c.api.TrackEvent(ctx, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (c *sdkClient) SendEmails(ctx context.Context, emails []Email) (int, error) {
	data := make([]sdk.EmailData, 0, len(emails))
	for _, em := range emails {
		data = append(data, sdk.EmailData{
			To:               em.To,
			From:             em.From,
			Subject:          em.Subject,
			HTMLBody:         em.HTMLBody,
			Transactional:    em.Transactional,
			Personalizations: em.Personalizations,
		})
	}
	return c.api.CreateEmails(ctx, data)
}

func (c *sdkClient) ListBroadcasts(ctx context.Context) (json.RawMessage, error) {
	return raw(c.api.GetBroadcasts(ctx))
}

func (c *sdkClient) CreateBroadcasts(ctx context.Context, broadcasts []Broadcast) (bool, error) {
	data := make([]sdk.BroadcastData, 0, len(broadcasts))
	for _, b := range broadcasts {
		data = append(data, sdk.BroadcastData{
			Name:    b.Name,
			Subject: b.Subject,
			Content: b.Content,
			Type:    broadcastType(b.Type),
			From: sdk.ContactData{
				Name:  b.From.Name,
				Email: b.From.Email,
			},
			InclusiveTags:    strings.Join(b.InclusiveTags, ","),
			ExclusiveTags:    strings.Join(b.ExclusiveTags, ","),
			SegmentID:        b.SegmentID,
			BatchSizePerHour: b.BatchSizePerHour,
		})
	}
	if err := c.api.CreateBroadcast(ctx, data); err != nil {
		return false, err
	}
	return true, nil
}

// broadcastType maps the html/markdown/plain content types onto the
// platform's two broadcast types: raw passes HTML through untouched, plain
// renders the content through the platform's template.
func broadcastType(contentType string) sdk.BroadcastType {
	if contentType == "html" {
		return sdk.BroadcastTypeRaw
	}
	return sdk.BroadcastTypePlain
}

func (c *sdkClient) SiteStats(ctx context.Context) (json.RawMessage, error) {
	return raw(c.api.GetSiteStats(ctx))
}

func (c *sdkClient) SegmentStats(ctx context.Context, segmentID string) (json.RawMessage, error) {
	return raw(c.api.GetSegmentStats(ctx, segmentID))
}

func (c *sdkClient) ReportStats(ctx context.Context, reportID string) (json.RawMessage, error) {
	return raw(c.api.GetReportStats(ctx, reportID))
}

func (c *sdkClient) ValidateEmail(ctx context.Context, email, name, userAgent, ip string) (bool, error) {
	resp, err := c.api.ValidateEmail(ctx, &sdk.ValidationData{
		EmailAddress: email,
		FullName:     name,
		UserAgent:    userAgent,
		IPAddress:    ip,
	})
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}

func (c *sdkClient) GuessGender(ctx context.Context, name string) (json.RawMessage, error) {
	return raw(c.api.GetGender(ctx, name))
}

func (c *sdkClient) GeolocateIP(ctx context.Context, ip string) (json.RawMessage, error) {
	return raw(c.api.GeoLocateIP(ctx, ip))
}

func (c *sdkClient) BlacklistStatus(ctx context.Context, domain, ip string) (json.RawMessage, error) {
	return raw(c.api.GetBlacklistStatus(ctx, &sdk.BlacklistData{
		Domain:    domain,
		IPAddress: ip,
	}))
}

func (c *sdkClient) ModerateContent(ctx context.Context, content string) (json.RawMessage, error) {
	return raw(c.api.GetContentModeration(ctx, content))
}

func (c *sdkClient) ListSequences(ctx context.Context) (json.RawMessage, error) {
	return c.fetch(ctx, http.MethodGet, "/fetch/sequences", nil, nil)
}

func (c *sdkClient) GetEmailTemplate(ctx context.Context, id int) (json.RawMessage, error) {
	return c.fetch(ctx, http.MethodGet, "/fetch/templates/"+strconv.Itoa(id), nil, nil)
}

func (c *sdkClient) UpdateEmailTemplate(ctx context.Context, id int, subject, html string) (json.RawMessage, error) {
	template := map[string]any{}
	if subject != "" {
		template["subject"] = subject
	}
	if html != "" {
		template["html"] = html
	}
	body := map[string]any{"template": template}
	return c.fetch(ctx, http.MethodPatch, "/fetch/templates/"+strconv.Itoa(id), nil, body)
}

func (c *sdkClient) FormResponses(ctx context.Context, formID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("id", formID)
	return c.fetch(ctx, http.MethodGet, "/fetch/responses", params, nil)
}

func (c *sdkClient) fetch(ctx context.Context, method, path string, params url.Values, body any) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("site_uuid", c.creds.SiteUUID)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+params.Encode(), reader)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.creds.PublishableKey, c.creds.SecretKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "bento-mcp-go")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("bento API returned %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}
	return payload, nil
}
