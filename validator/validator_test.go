package validator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/schemakit/schemakit/schema"
)

func mustParse(t *testing.T, raw string) *schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return s
}

func mustValidateJSON(t *testing.T, doc string, s *schema.Schema) *schema.ValidationResult {
	t.Helper()
	res, err := ValidateJSON([]byte(doc), s)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return res
}

func TestRequiredFieldMissing(t *testing.T) {
	s := mustParse(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`)
	res := mustValidateJSON(t, `{}`, s)
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Path != "name" || e.Message != "Required field missing" {
		t.Fatalf("unexpected error %+v", e)
	}
	if e.Value != nil {
		t.Fatalf("missing-field errors must omit the value, got %v", e.Value)
	}
}

func TestAllMissingRequiredFieldsReported(t *testing.T) {
	s := mustParse(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}, "b": {"type": "string"}, "c": {"type": "string"}},
		"required": ["a", "b", "c"]
	}`)
	res := mustValidateJSON(t, `{"b": "here"}`, s)
	if len(res.Errors) != 2 {
		t.Fatalf("expected two errors, got %v", res.Errors)
	}
	if res.Errors[0].Path != "a" || res.Errors[1].Path != "c" {
		t.Fatalf("unexpected paths: %+v", res.Errors)
	}
}

func TestMinimumAtRoot(t *testing.T) {
	s := mustParse(t, `{"type": "integer", "minimum": 0}`)
	res := mustValidateJSON(t, `-1`, s)
	if res.Valid || len(res.Errors) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	e := res.Errors[0]
	if e.Path != "" || e.Message != "Value must be >= 0" {
		t.Fatalf("unexpected error %+v", e)
	}
}

func TestArrayElementTypeMismatch(t *testing.T) {
	s := mustParse(t, `{"type": "array", "items": {"type": "string"}}`)
	res := mustValidateJSON(t, `["a", 1, "c"]`, s)
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Path != "[1]" {
		t.Fatalf("unexpected path %q", e.Path)
	}
	if e.Message != "Expected type string, got integer" {
		t.Fatalf("unexpected message %q", e.Message)
	}
}

func TestTypeMismatchShortCircuitsConstraints(t *testing.T) {
	s := mustParse(t, `{
		"type": "string",
		"pattern": "^[a-z]+$",
		"minLength": 5,
		"enum": ["alpha", "beta"]
	}`)
	res := mustValidateJSON(t, `7`, s)
	if len(res.Errors) != 1 {
		t.Fatalf("type mismatch must suppress constraint errors, got %v", res.Errors)
	}
	if !strings.HasPrefix(res.Errors[0].Message, "Expected type") {
		t.Fatalf("unexpected message %q", res.Errors[0].Message)
	}
}

func TestMultipleConstraintsFireTogether(t *testing.T) {
	s := mustParse(t, `{
		"type": "string",
		"minLength": 10,
		"enum": ["long-enough-value"]
	}`)
	res := mustValidateJSON(t, `"nope"`, s)
	if len(res.Errors) != 2 {
		t.Fatalf("expected enum and minLength errors, got %v", res.Errors)
	}
}

func TestIntegerNeverMatchesNumber(t *testing.T) {
	s := mustParse(t, `{"type": "number"}`)
	res := mustValidateJSON(t, `5`, s)
	if res.Valid {
		t.Fatalf("integral values classify as integer, not number")
	}
	if res.Errors[0].Message != "Expected type number, got integer" {
		t.Fatalf("unexpected message %q", res.Errors[0].Message)
	}

	res = mustValidateJSON(t, `5.5`, s)
	if !res.Valid {
		t.Fatalf("non-integral number rejected: %+v", res.Errors)
	}
}

func TestOneOfExclusivity(t *testing.T) {
	s := mustParse(t, `{
		"oneOf": [
			{"type": "integer", "minimum": 0},
			{"type": "integer", "maximum": 10}
		]
	}`)

	// 5 matches both branches: zero-or-many matches fail
	res := mustValidateJSON(t, `5`, s)
	if res.Valid {
		t.Fatalf("value matching two oneOf branches must be invalid")
	}
	if res.Errors[0].Message != "Value must match exactly one of the oneOf schemas" {
		t.Fatalf("unexpected message %q", res.Errors[0].Message)
	}

	// 20 matches only the minimum branch
	res = mustValidateJSON(t, `20`, s)
	if !res.Valid {
		t.Fatalf("single-branch match must be valid: %+v", res.Errors)
	}

	// -5 matches only the maximum branch
	res = mustValidateJSON(t, `-5`, s)
	if !res.Valid {
		t.Fatalf("single-branch match must be valid: %+v", res.Errors)
	}
}

func TestAnyOf(t *testing.T) {
	s := mustParse(t, `{
		"anyOf": [
			{"type": "string"},
			{"type": "integer"}
		]
	}`)
	if res := mustValidateJSON(t, `"ok"`, s); !res.Valid {
		t.Fatalf("string should match anyOf: %+v", res.Errors)
	}
	if res := mustValidateJSON(t, `3`, s); !res.Valid {
		t.Fatalf("integer should match anyOf: %+v", res.Errors)
	}
	res := mustValidateJSON(t, `true`, s)
	if res.Valid {
		t.Fatalf("boolean must fail anyOf")
	}
	if res.Errors[0].Message != "Value must match at least one of the anyOf schemas" {
		t.Fatalf("unexpected message %q", res.Errors[0].Message)
	}
}

func TestAllOf(t *testing.T) {
	s := mustParse(t, `{
		"allOf": [
			{"type": "integer", "minimum": 0},
			{"type": "integer", "maximum": 10}
		]
	}`)
	if res := mustValidateJSON(t, `5`, s); !res.Valid {
		t.Fatalf("value inside both bounds must pass: %+v", res.Errors)
	}
	res := mustValidateJSON(t, `20`, s)
	if res.Valid || res.Errors[0].Message != "Value must match all of the allOf schemas" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestNestedObjectPaths(t *testing.T) {
	s := mustParse(t, `{
		"type": "object",
		"properties": {
			"user": {
				"type": "object",
				"properties": {
					"name": {"type": "string", "minLength": 2},
					"tags": {"type": "array", "items": {"type": "string"}}
				},
				"required": ["name"]
			}
		}
	}`)
	res := mustValidateJSON(t, `{"user": {"name": "x", "tags": ["ok", 3]}}`, s)
	if len(res.Errors) != 2 {
		t.Fatalf("expected two errors, got %v", res.Errors)
	}
	if res.Errors[0].Path != "user.name" {
		t.Fatalf("unexpected path %q", res.Errors[0].Path)
	}
	if res.Errors[1].Path != "user.tags[1]" {
		t.Fatalf("unexpected path %q", res.Errors[1].Path)
	}
}

func TestEnumMembership(t *testing.T) {
	s := mustParse(t, `{"enum": ["red", "green", 7]}`)
	if res := mustValidateJSON(t, `"green"`, s); !res.Valid {
		t.Fatalf("enum member rejected: %+v", res.Errors)
	}
	if res := mustValidateJSON(t, `7`, s); !res.Valid {
		t.Fatalf("numeric enum member rejected: %+v", res.Errors)
	}
	res := mustValidateJSON(t, `"blue"`, s)
	if res.Valid {
		t.Fatalf("non-member accepted")
	}
	if res.Errors[0].Message != `Value must be one of: "red", "green", 7` {
		t.Fatalf("unexpected message %q", res.Errors[0].Message)
	}
}

func TestPattern(t *testing.T) {
	s := mustParse(t, `{"type": "string", "pattern": "^[a-z]+$"}`)
	if res := mustValidateJSON(t, `"abc"`, s); !res.Valid {
		t.Fatalf("pattern match rejected: %+v", res.Errors)
	}
	res := mustValidateJSON(t, `"ABC"`, s)
	if res.Valid || res.Errors[0].Message != "Value does not match pattern: ^[a-z]+$" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestStringLengthBounds(t *testing.T) {
	s := mustParse(t, `{"type": "string", "minLength": 2, "maxLength": 4}`)
	if res := mustValidateJSON(t, `"abc"`, s); !res.Valid {
		t.Fatalf("in-bounds string rejected: %+v", res.Errors)
	}
	if res := mustValidateJSON(t, `"a"`, s); res.Valid {
		t.Fatalf("short string accepted")
	}
	if res := mustValidateJSON(t, `"abcdef"`, s); res.Valid {
		t.Fatalf("long string accepted")
	}
}

func TestInvalidPatternFailsCompile(t *testing.T) {
	s := mustParse(t, `{"type": "string", "pattern": "["}`)
	if _, err := Compile(s); err == nil {
		t.Fatalf("invalid pattern must fail compilation")
	}
}

func TestUnresolvedRefPasses(t *testing.T) {
	s := mustParse(t, `{"$ref": "https://example.com/other.json"}`)
	res := mustValidateJSON(t, `{"anything": true}`, s)
	if !res.Valid {
		t.Fatalf("unresolved ref must pass vacuously: %+v", res.Errors)
	}
}

func TestAbsentOptionalPropertyNotRecursed(t *testing.T) {
	s := mustParse(t, `{
		"type": "object",
		"properties": {"opt": {"type": "string", "minLength": 3}}
	}`)
	res := mustValidateJSON(t, `{}`, s)
	if !res.Valid {
		t.Fatalf("absent optional property must not error: %+v", res.Errors)
	}
}

func TestDeterministicResults(t *testing.T) {
	s := mustParse(t, `{
		"type": "object",
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "integer", "minimum": 10}
		},
		"required": ["a"]
	}`)
	first := mustValidateJSON(t, `{"b": 3}`, s)
	for i := 0; i < 5; i++ {
		again := mustValidateJSON(t, `{"b": 3}`, s)
		a, _ := json.Marshal(first)
		b, _ := json.Marshal(again)
		if string(a) != string(b) {
			t.Fatalf("results differ between runs: %s vs %s", a, b)
		}
	}
}

func TestValidateNilSchema(t *testing.T) {
	if _, err := Validate(map[string]any{}, nil); err == nil {
		t.Fatalf("nil schema must fail")
	}
}
