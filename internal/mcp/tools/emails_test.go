package tools

import (
	"context"
	"testing"
)

func TestSendTransactionalEmail_DefaultsTransactional(t *testing.T) {
	fake := &fakeClient{}
	h := handlerByName(t, "send_transactional_email")

	args := Arguments{
		"to":        "john@example.com",
		"from":      "support@example.com",
		"subject":   "Your receipt",
		"html_body": "<p>Thanks!</p>",
	}
	out, err := h.Call(context.Background(), args, fake)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 1 {
		t.Fatalf("expected success count 1, got %v", out)
	}
	if len(fake.emails) != 1 || len(fake.emails[0]) != 1 {
		t.Fatalf("expected one delegated call with one email")
	}
	email := fake.emails[0][0]
	if !email.Transactional {
		t.Fatalf("expected transactional default true")
	}
	if email.To != "john@example.com" || email.From != "support@example.com" {
		t.Fatalf("unexpected addresses %+v", email)
	}
}

func TestSendTransactionalEmail_RejectsInvalidSender(t *testing.T) {
	fake := &fakeClient{}
	h := handlerByName(t, "send_transactional_email")

	args := Arguments{
		"to":        "john@example.com",
		"from":      "not-an-address",
		"subject":   "x",
		"html_body": "y",
	}
	if _, err := h.Call(context.Background(), args, fake); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(fake.emails) != 0 {
		t.Fatalf("expected no remote call")
	}
}

func TestSendTransactionalEmail_ExplicitNonTransactional(t *testing.T) {
	fake := &fakeClient{}
	h := handlerByName(t, "send_transactional_email")

	args := Arguments{
		"to":            "john@example.com",
		"from":          "support@example.com",
		"subject":       "Hi",
		"html_body":     "<p>Hi</p>",
		"transactional": false,
	}
	if _, err := h.Call(context.Background(), args, fake); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.emails[0][0].Transactional {
		t.Fatalf("expected transactional false to pass through")
	}
}
