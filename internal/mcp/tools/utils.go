package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// requireState returns the state argument, which must be exactly two characters.
func requireState(args map[string]any) (string, error) {
	raw, ok := args["state"]
	if !ok || raw == nil {
		return "", &ValidationError{Field: "state", Reason: "is required"}
	}
	state, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: "state", Reason: "must be a string"}
	}
	if utf8.RuneCountInString(state) != 2 {
		return "", &ValidationError{Field: "state", Reason: "must be a 2-letter state code"}
	}
	return state, nil
}

// requireNumber returns a required numeric argument. Numeric strings are
// accepted since some clients send every argument as text.
func requireNumber(args map[string]any, field string) (float64, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	return toNumber(field, raw)
}

// optionalNumber returns nil when the argument was not supplied at all.
func optionalNumber(args map[string]any, field string) (*float64, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return nil, nil
	}
	v, err := toNumber(field, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func toNumber(field string, raw any) (float64, error) {
	switch v := raw.(type) {
	case bool:
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, &ValidationError{Field: field, Reason: "must be a number"}
		}
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

func marshalText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode tool result: %w", err)
	}
	return string(b), nil
}
