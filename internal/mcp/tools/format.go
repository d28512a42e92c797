package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fixed result literals. Every tool renders through FormatResult so the
// normalization rules cannot drift between tools.
const (
	MsgNoData  = "No data found."
	MsgSuccess = "Operation completed successfully."
	MsgFailure = "Operation failed."
)

// FormatResult maps a delegated-call result to the single text payload a tool
// returns. Raw JSON is re-indented in place, which keeps the remote field
// order; structs marshal in declaration order, so both paths are stable.
func FormatResult(v any) string {
	switch x := v.(type) {
	case nil:
		return MsgNoData
	case bool:
		if x {
			return MsgSuccess
		}
		return MsgFailure
	case int:
		return fmt.Sprintf("Processed %d item(s).", x)
	case string:
		if x == "" {
			return MsgNoData
		}
		return x
	case json.RawMessage:
		trimmed := bytes.TrimSpace(x)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return MsgNoData
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
			return string(trimmed)
		}
		return buf.String()
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
