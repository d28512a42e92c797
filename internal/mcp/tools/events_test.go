package tools

import (
	"context"
	"testing"
)

func TestTrackPurchase_DefaultsCurrencyKeepsAmount(t *testing.T) {
	fake := &fakeClient{}
	h := handlerByName(t, "track_purchase")

	args := Arguments{
		"email":    "john@example.com",
		"order_id": "order-42",
		"amount":   float64(9999),
	}
	if _, err := h.Call(context.Background(), args, fake); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.events) != 1 || len(fake.events[0]) != 1 {
		t.Fatalf("expected one delegated call with one event")
	}
	ev := fake.events[0][0]
	if ev.Type != "$purchase" {
		t.Fatalf("unexpected event type %q", ev.Type)
	}
	value, ok := ev.Details["value"].(map[string]any)
	if !ok {
		t.Fatalf("expected value details, got %v", ev.Details)
	}
	if value["currency"] != "USD" {
		t.Fatalf("expected default currency USD, got %v", value["currency"])
	}
	if value["amount"] != 9999 {
		t.Fatalf("expected amount 9999 unchanged, got %v", value["amount"])
	}
	unique, ok := ev.Details["unique"].(map[string]any)
	if !ok || unique["key"] != "order-42" {
		t.Fatalf("expected order id as dedup key, got %v", ev.Details["unique"])
	}
	if _, hasCart := ev.Details["cart"]; hasCart {
		t.Fatalf("expected no cart details when none supplied")
	}
}

func TestTrackPurchase_CartAndExplicitCurrency(t *testing.T) {
	fake := &fakeClient{}
	h := handlerByName(t, "track_purchase")

	args := Arguments{
		"email":      "john@example.com",
		"order_id":   "order-43",
		"amount":     float64(2500),
		"currency":   "EUR",
		"cart_items": []any{map[string]any{"product_sku": "sku-1", "quantity": float64(2)}},
	}
	if _, err := h.Call(context.Background(), args, fake); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev := fake.events[0][0]
	value := ev.Details["value"].(map[string]any)
	if value["currency"] != "EUR" {
		t.Fatalf("expected explicit currency, got %v", value["currency"])
	}
	cart, ok := ev.Details["cart"].(map[string]any)
	if !ok {
		t.Fatalf("expected cart details")
	}
	items, ok := cart["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one cart item, got %v", cart["items"])
	}
}

func TestTrackEvent_ForwardsFieldsAndDetails(t *testing.T) {
	fake := &fakeClient{}
	h := handlerByName(t, "track_event")

	args := Arguments{
		"email":   "john@example.com",
		"type":    "$completed_onboarding",
		"fields":  map[string]any{"plan": "pro"},
		"details": map[string]any{"source": "cli"},
	}
	out, err := h.Call(context.Background(), args, fake)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 1 {
		t.Fatalf("expected count 1, got %v", out)
	}
	ev := fake.events[0][0]
	if ev.Fields["plan"] != "pro" || ev.Details["source"] != "cli" {
		t.Fatalf("unexpected event %+v", ev)
	}
}
