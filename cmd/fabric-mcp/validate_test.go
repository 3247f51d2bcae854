package main

import (
	"strings"
	"testing"
)

func TestValidateArgs_MissingRequired(t *testing.T) {
	specs := []argSpec{{name: "bandwidth", typ: argNumber, required: true}}

	terr := validateArgs(map[string]any{}, specs)
	if terr == nil {
		t.Fatal("Expected error for missing required field")
	}
	if terr.Kind != errInvalidArguments {
		t.Errorf("Expected invalid arguments kind, got %q", terr.Kind)
	}
	if terr.Field != "bandwidth" {
		t.Errorf("Expected field bandwidth, got %q", terr.Field)
	}
}

func TestValidateArgs_OptionalAbsent(t *testing.T) {
	specs := []argSpec{{name: "limit", typ: argNumber}}
	if terr := validateArgs(map[string]any{}, specs); terr != nil {
		t.Errorf("Optional absent field should pass, got %v", terr)
	}
}

func TestValidateArgs_TypeMismatches(t *testing.T) {
	tests := []struct {
		name string
		spec argSpec
		val  any
		ok   bool
	}{
		{"string ok", argSpec{name: "f", typ: argString}, "hello", true},
		{"string wrong", argSpec{name: "f", typ: argString}, 42, false},
		{"number float ok", argSpec{name: "f", typ: argNumber}, float64(50), true},
		{"number int ok", argSpec{name: "f", typ: argNumber}, 50, true},
		{"number wrong", argSpec{name: "f", typ: argNumber}, "50", false},
		{"boolean ok", argSpec{name: "f", typ: argBoolean}, true, true},
		{"boolean wrong", argSpec{name: "f", typ: argBoolean}, "true", false},
		{"object ok", argSpec{name: "f", typ: argObject}, map[string]any{"k": "v"}, true},
		{"object wrong", argSpec{name: "f", typ: argObject}, []any{"k"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terr := validateArgs(map[string]any{"f": tt.val}, []argSpec{tt.spec})
			if tt.ok && terr != nil {
				t.Errorf("Expected pass, got %v", terr)
			}
			if !tt.ok && terr == nil {
				t.Error("Expected type error, got nil")
			}
		})
	}
}

func TestValidateArgs_EnumMembership(t *testing.T) {
	specs := []argSpec{{name: "type", typ: argString, required: true,
		enum: []string{"EVPL_VC", "EPL_VC"}}}

	if terr := validateArgs(map[string]any{"type": "EVPL_VC"}, specs); terr != nil {
		t.Errorf("Allowed enum member should pass, got %v", terr)
	}

	terr := validateArgs(map[string]any{"type": "FOO_VC"}, specs)
	if terr == nil {
		t.Fatal("Expected error for value outside enum")
	}
	if !strings.Contains(terr.Error(), "EVPL_VC") {
		t.Errorf("Error should list allowed members, got %q", terr.Error())
	}
}

func TestValidateArgs_UndeclaredFieldsPass(t *testing.T) {
	// Create/search bodies forward extra fields verbatim; the validator
	// only checks declared shapes.
	specs := []argSpec{{name: "name", typ: argString, required: true}}
	args := map[string]any{"name": "conn", "redundancy": map[string]any{"priority": "PRIMARY"}}
	if terr := validateArgs(args, specs); terr != nil {
		t.Errorf("Undeclared fields should pass through, got %v", terr)
	}
}

func TestValidateArgs_NoCoercion(t *testing.T) {
	// A numeric string is not a number — the validator must not coerce.
	specs := []argSpec{{name: "bandwidth", typ: argNumber, required: true}}
	if terr := validateArgs(map[string]any{"bandwidth": "1000"}, specs); terr == nil {
		t.Error("Expected string-typed number to be rejected")
	}
}

func TestIntArg_Defaults(t *testing.T) {
	if got := intArg(map[string]any{}, "limit", 20); got != 20 {
		t.Errorf("Expected default 20, got %d", got)
	}
	if got := intArg(map[string]any{"limit": float64(5)}, "limit", 20); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
	if got := intArg(map[string]any{"limit": 7}, "limit", 20); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
}
