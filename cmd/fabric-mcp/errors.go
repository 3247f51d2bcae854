package main

import "fmt"

// errorKind classifies invocation failures. Every kind except startup
// configuration errors is converted to an isError tool result at the
// dispatch boundary — none of them crash the process.
type errorKind string

const (
	errUnknownTool      errorKind = "unknown tool"
	errInvalidArguments errorKind = "invalid arguments"
	errNotSupported     errorKind = "not supported by provider"
)

// ToolError is a pre-dispatch failure: the invocation never produced an
// outbound request.
type ToolError struct {
	Kind    errorKind
	Field   string
	Message string
}

func (e *ToolError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func unknownToolErr(name string) *ToolError {
	return &ToolError{Kind: errUnknownTool, Message: fmt.Sprintf("%q is not a registered tool", name)}
}

func missingFieldErr(field string) *ToolError {
	return &ToolError{Kind: errInvalidArguments, Field: field, Message: "missing required field"}
}

func wrongTypeErr(field, want string) *ToolError {
	return &ToolError{Kind: errInvalidArguments, Field: field, Message: fmt.Sprintf("must be a %s", want)}
}

func notSupportedErr(suggestion string) *ToolError {
	return &ToolError{Kind: errNotSupported, Message: suggestion}
}
