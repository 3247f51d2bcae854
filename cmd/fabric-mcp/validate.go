package main

import (
	"fmt"
	"slices"
	"strings"
)

// Argument types accepted by the validator. These mirror the primitive types
// declared in the tool input schemas.
const (
	argString  = "string"
	argNumber  = "number"
	argBoolean = "boolean"
	argObject  = "object"
)

// argSpec declares one argument of a route: its primitive type, whether it is
// required, and an optional enumeration of allowed string values.
type argSpec struct {
	name     string
	typ      string
	required bool
	enum     []string
}

// pageArgs is the shared schema for list tools: optional pagination numbers.
// Defaults (limit=20, offset=0) are applied by the dispatcher, not here.
var pageArgs = []argSpec{
	{name: "limit", typ: argNumber},
	{name: "offset", typ: argNumber},
}

// validateArgs checks an invocation's arguments against the route's declared
// schema: required fields present, primitive types matching, enum membership.
// It performs no coercion and fills in no defaults. Arguments not named in
// the schema pass through untouched — create/search bodies are forwarded
// verbatim to the provider.
func validateArgs(args map[string]any, specs []argSpec) *ToolError {
	for _, spec := range specs {
		v, ok := args[spec.name]
		if !ok || v == nil {
			if spec.required {
				return missingFieldErr(spec.name)
			}
			continue
		}

		switch spec.typ {
		case argString:
			s, ok := v.(string)
			if !ok {
				return wrongTypeErr(spec.name, argString)
			}
			if len(spec.enum) > 0 && !slices.Contains(spec.enum, s) {
				return &ToolError{
					Kind:    errInvalidArguments,
					Field:   spec.name,
					Message: fmt.Sprintf("must be one of %s", strings.Join(spec.enum, ", ")),
				}
			}
		case argNumber:
			switch v.(type) {
			case float64, int, int64:
			default:
				return wrongTypeErr(spec.name, argNumber)
			}
		case argBoolean:
			if _, ok := v.(bool); !ok {
				return wrongTypeErr(spec.name, argBoolean)
			}
		case argObject:
			if _, ok := v.(map[string]any); !ok {
				return wrongTypeErr(spec.name, argObject)
			}
		}
	}
	return nil
}

// intArg extracts a numeric argument as an int, falling back to the default
// when absent. JSON-decoded numbers arrive as float64.
func intArg(args map[string]any, key string, defaultVal int) int {
	v, ok := args[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return defaultVal
}
