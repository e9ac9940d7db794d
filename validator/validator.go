// Package validator implements recursive JSON document validation against a
// schema tree, accumulating path-qualified errors.
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/schemakit/schemakit/schema"
)

// Validator holds a schema together with its pre-compiled pattern regexps.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	schema   *schema.Schema
	patterns map[string]*regexp.Regexp
}

// Compile constructs a Validator for the provided schema. Every "pattern"
// constraint in the tree is compiled up front: an invalid regular expression
// is a schema-configuration error and is reported here, never as a document
// validation error.
func Compile(s *schema.Schema) (*Validator, error) {
	if s == nil {
		return nil, schema.ErrNilSchema
	}
	v := &Validator{schema: s, patterns: make(map[string]*regexp.Regexp)}
	if err := v.compilePatterns(s); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Validator) compilePatterns(s *schema.Schema) error {
	if s == nil {
		return nil
	}
	if s.Pattern != "" {
		if _, done := v.patterns[s.Pattern]; !done {
			re, err := regexp.Compile(s.Pattern)
			if err != nil {
				return fmt.Errorf("compile pattern %q: %w", s.Pattern, err)
			}
			v.patterns[s.Pattern] = re
		}
	}
	if err := v.compilePatterns(s.Items); err != nil {
		return err
	}
	for _, name := range s.Properties.Keys() {
		child, _ := s.Properties.Get(name)
		if err := v.compilePatterns(child); err != nil {
			return err
		}
	}
	for _, list := range [][]*schema.Schema{s.OneOf, s.AnyOf, s.AllOf} {
		for _, sub := range list {
			if err := v.compilePatterns(sub); err != nil {
				return err
			}
		}
	}
	for _, name := range s.Definitions.Keys() {
		def, _ := s.Definitions.Get(name)
		if err := v.compilePatterns(def); err != nil {
			return err
		}
	}
	return nil
}

// Validate walks the document against the schema and returns every violation
// found. It never fails for malformed documents; all failures surface as
// ValidationError entries.
func (v *Validator) Validate(doc any) *schema.ValidationResult {
	errs := []schema.ValidationError{}
	v.validateValue(doc, v.schema, "", &errs)
	return &schema.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Validate is a convenience wrapper that compiles and runs in one call.
func Validate(doc any, s *schema.Schema) (*schema.ValidationResult, error) {
	v, err := Compile(s)
	if err != nil {
		return nil, err
	}
	return v.Validate(doc), nil
}

// ValidateJSON decodes raw JSON (keeping numbers as json.Number) and validates
// the result.
func ValidateJSON(data []byte, s *schema.Schema) (*schema.ValidationResult, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return Validate(doc, s)
}

func (v *Validator) validateValue(value any, node *schema.Schema, path string, sink *[]schema.ValidationError) {
	if node == nil {
		return
	}

	// Unresolved references pass vacuously; schema.ResolveRefs substitutes
	// local definitions before a validator ever sees them.
	if node.Ref != "" {
		return
	}

	if len(node.OneOf) > 0 {
		matches := 0
		for _, sub := range node.OneOf {
			if v.matches(value, sub, path) {
				matches++
			}
		}
		if matches != 1 {
			v.fail(sink, path, "Value must match exactly one of the oneOf schemas", value)
		}
		return
	}

	if len(node.AnyOf) > 0 {
		for _, sub := range node.AnyOf {
			if v.matches(value, sub, path) {
				return
			}
		}
		v.fail(sink, path, "Value must match at least one of the anyOf schemas", value)
		return
	}

	if len(node.AllOf) > 0 {
		for _, sub := range node.AllOf {
			if !v.matches(value, sub, path) {
				v.fail(sink, path, "Value must match all of the allOf schemas", value)
				return
			}
		}
		return
	}

	// Type check. A mismatch makes every remaining constraint on this node
	// meaningless, so it short-circuits the rest.
	if len(node.Type) > 0 {
		actual := schema.TypeOf(value)
		if !node.Type.Contains(actual) {
			v.fail(sink, path, fmt.Sprintf("Expected type %s, got %s", node.Type, actual), value)
			return
		}
	}

	if len(node.Enum) > 0 && !enumContains(node.Enum, value) {
		v.fail(sink, path, "Value must be one of: "+formatEnum(node.Enum), value)
	}

	if node.Pattern != "" {
		if str, ok := value.(string); ok {
			if re := v.patterns[node.Pattern]; re != nil && !re.MatchString(str) {
				v.fail(sink, path, "Value does not match pattern: "+node.Pattern, value)
			}
		}
	}

	if num, ok := schema.NumberOf(value); ok {
		if node.Minimum != nil && num < *node.Minimum {
			v.fail(sink, path, "Value must be >= "+formatNumber(*node.Minimum), value)
		}
		if node.Maximum != nil && num > *node.Maximum {
			v.fail(sink, path, "Value must be <= "+formatNumber(*node.Maximum), value)
		}
	}

	if str, ok := value.(string); ok {
		length := utf8.RuneCountInString(str)
		if node.MinLength != nil && length < *node.MinLength {
			v.fail(sink, path, fmt.Sprintf("String must be at least %d characters", *node.MinLength), value)
		}
		if node.MaxLength != nil && length > *node.MaxLength {
			v.fail(sink, path, fmt.Sprintf("String must be at most %d characters", *node.MaxLength), value)
		}
	}

	if node.Type.Contains(schema.TypeObject) {
		if fields, ok := objectFields(value); ok {
			for _, name := range node.Required {
				if _, present := fields(name); !present {
					*sink = append(*sink, schema.ValidationError{
						Path:    joinPath(path, name),
						Message: "Required field missing",
					})
				}
			}
			for _, name := range node.Properties.Keys() {
				child, present := fields(name)
				if !present {
					continue
				}
				propSchema, _ := node.Properties.Get(name)
				v.validateValue(child, propSchema, joinPath(path, name), sink)
			}
		}
	}

	if node.Type.Contains(schema.TypeArray) && node.Items != nil {
		if arr, ok := value.([]any); ok {
			for i, elem := range arr {
				v.validateValue(elem, node.Items, path+"["+strconv.Itoa(i)+"]", sink)
			}
		}
	}
}

// matches runs a subschema attempt against a fresh error sink and reports
// whether it produced zero errors. The attempt's errors are discarded.
func (v *Validator) matches(value any, sub *schema.Schema, path string) bool {
	attempt := []schema.ValidationError{}
	v.validateValue(value, sub, path, &attempt)
	return len(attempt) == 0
}

func (v *Validator) fail(sink *[]schema.ValidationError, path, message string, value any) {
	*sink = append(*sink, schema.ValidationError{Path: path, Message: message, Value: value})
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// objectFields adapts the two object representations the engine accepts:
// decoded JSON maps and ordered schema.Object values.
func objectFields(value any) (func(string) (any, bool), bool) {
	switch obj := value.(type) {
	case map[string]any:
		return func(name string) (any, bool) {
			v, ok := obj[name]
			return v, ok
		}, true
	case *schema.Object:
		return obj.Get, true
	default:
		return nil, false
	}
}

func enumContains(enum []any, value any) bool {
	for _, candidate := range enum {
		if jsonEqual(candidate, value) {
			return true
		}
	}
	return false
}

// jsonEqual compares two decoded JSON values, treating json.Number and native
// numerics as interchangeable.
func jsonEqual(a, b any) bool {
	if fa, ok := schema.NumberOf(a); ok {
		fb, ok := schema.NumberOf(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, present := bv[k]
			if !present || !jsonEqual(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatEnum(enum []any) string {
	parts := make([]string, len(enum))
	for i, v := range enum {
		enc, err := json.Marshal(v)
		if err != nil {
			parts[i] = fmt.Sprintf("%v", v)
			continue
		}
		parts[i] = string(enc)
	}
	return strings.Join(parts, ", ")
}
