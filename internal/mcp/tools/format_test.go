package tools

import (
	"encoding/json"
	"testing"
)

func TestFormatResult_NoData(t *testing.T) {
	for _, v := range []any{nil, json.RawMessage(nil), json.RawMessage("null"), ""} {
		if got := FormatResult(v); got != MsgNoData {
			t.Fatalf("expected %q, got %q", MsgNoData, got)
		}
	}
}

func TestFormatResult_Bool(t *testing.T) {
	if got := FormatResult(true); got != MsgSuccess {
		t.Fatalf("expected %q, got %q", MsgSuccess, got)
	}
	if got := FormatResult(false); got != MsgFailure {
		t.Fatalf("expected %q, got %q", MsgFailure, got)
	}
}

func TestFormatResult_Count(t *testing.T) {
	if got := FormatResult(3); got != "Processed 3 item(s)." {
		t.Fatalf("unexpected count message %q", got)
	}
}

func TestFormatResult_PreservesFieldOrder(t *testing.T) {
	raw := json.RawMessage(`{"zebra":1,"alpha":{"nested":true},"mid":[1,2]}`)
	got := FormatResult(raw)
	want := "{\n  \"zebra\": 1,\n  \"alpha\": {\n    \"nested\": true\n  },\n  \"mid\": [\n    1,\n    2\n  ]\n}"
	if got != want {
		t.Fatalf("unexpected serialization:\n%s", got)
	}
}

func TestFormatResult_Deterministic(t *testing.T) {
	raw := json.RawMessage(`{"b":1,"a":2}`)
	first := FormatResult(raw)
	second := FormatResult(raw)
	if first != second {
		t.Fatalf("formatting is not deterministic")
	}
}
