package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Sentinel violation kinds. Tests and callers match them with errors.Is.
var (
	// ErrMissingRequiredField marks a required schema field absent from the payload.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrTypeMismatch marks a payload value whose runtime type contradicts the schema.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ValidationError aggregates every schema violation found in one payload.
type ValidationError struct {
	violations []error
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.violations))
	for i, v := range e.violations {
		parts[i] = v.Error()
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual violations to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.violations
}

// ValidateInput checks raw against the tool's input schema and returns the
// payload with declared defaults applied. Only declared properties are
// inspected; unknown extra fields pass through untouched. Validation is
// total and side-effect free.
func ValidateInput(schema *jsonschema.Schema, raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	if !gjson.ValidBytes(raw) {
		return nil, &ValidationError{violations: []error{errors.New("payload is not valid JSON")}}
	}
	if schema == nil || schema.Properties == nil {
		return raw, nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var violations []error
	out := raw
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, prop := pair.Key, pair.Value

		val := gjson.GetBytes(out, name)
		if !val.Exists() {
			if required[name] {
				violations = append(violations, fmt.Errorf("%w: %q", ErrMissingRequiredField, name))
				continue
			}
			if prop.Default != nil {
				patched, err := sjson.SetBytes(out, name, prop.Default)
				if err != nil {
					return nil, fmt.Errorf("apply default for %q: %w", name, err)
				}
				out = patched
			}
			continue
		}

		if want := prop.Type; want != "" && !matchesType(want, val) {
			violations = append(violations, fmt.Errorf(
				"%w: field %q expects %s, got %s", ErrTypeMismatch, name, want, jsonTypeName(val)))
		}
	}

	if len(violations) > 0 {
		return nil, &ValidationError{violations: violations}
	}
	return out, nil
}

func matchesType(declared string, val gjson.Result) bool {
	switch declared {
	case "string":
		return val.Type == gjson.String
	case "number", "integer":
		return val.Type == gjson.Number
	case "boolean":
		return val.Type == gjson.True || val.Type == gjson.False
	case "object":
		return val.IsObject()
	case "array":
		return val.IsArray()
	case "null":
		return val.Type == gjson.Null
	default:
		return true
	}
}

func jsonTypeName(val gjson.Result) string {
	switch {
	case val.Type == gjson.String:
		return "string"
	case val.Type == gjson.Number:
		return "number"
	case val.Type == gjson.True || val.Type == gjson.False:
		return "boolean"
	case val.Type == gjson.Null:
		return "null"
	case val.IsArray():
		return "array"
	case val.IsObject():
		return "object"
	default:
		return "unknown"
	}
}
