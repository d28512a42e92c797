package tools

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Arguments wraps the raw MCP argument map with the coercions every tool
// needs. The protocol decodes numbers as float64 and lists as []any.
type Arguments map[string]any

func (a Arguments) String(key string) string {
	v, _ := a[key].(string)
	return strings.TrimSpace(v)
}

func (a Arguments) RequireString(key string) (string, error) {
	v := a.String(key)
	if v == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

// RequireEmail enforces the syntactic email constraint before any remote call.
func (a Arguments) RequireEmail(key string) (string, error) {
	v, err := a.RequireString(key)
	if err != nil {
		return "", err
	}
	if validate.Var(v, "email") != nil {
		return "", fmt.Errorf("%s must be a valid email address", key)
	}
	return v, nil
}

func (a Arguments) Int(key string, def int) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func (a Arguments) RequireInt(key string) (int, error) {
	switch v := a[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

func (a Arguments) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}

func (a Arguments) Map(key string) map[string]any {
	v, _ := a[key].(map[string]any)
	return v
}

// StringList accepts either a JSON array of strings or a comma-separated
// string, the two shapes hosts send for tag lists.
func (a Arguments) StringList(key string) []string {
	var out []string
	switch v := a[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

func (a Arguments) List(key string) []any {
	v, _ := a[key].([]any)
	return v
}
