// Package schema exposes the JSON Schema structures shared by the validator,
// template generator and code generator.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilSchema is returned when an operation receives a nil schema.
var ErrNilSchema = errors.New("nil schema")

// Schema represents one node of a JSON Schema document, either the root or a
// nested property definition. All fields are optional; JSON Schema draws no
// sharp distinction between a root schema and a property schema.
type Schema struct {
	SchemaURI   string      `json:"$schema,omitempty"`
	Ref         string      `json:"$ref,omitempty"`
	Type        TypeSet     `json:"type,omitempty"`
	Properties  *Properties `json:"properties,omitempty"`
	Required    []string    `json:"required,omitempty"`
	Items       *Schema     `json:"items,omitempty"`
	Enum        []any       `json:"enum,omitempty"`
	Pattern     string      `json:"pattern,omitempty"`
	Format      string      `json:"format,omitempty"`
	Minimum     *float64    `json:"minimum,omitempty"`
	Maximum     *float64    `json:"maximum,omitempty"`
	MinLength   *int        `json:"minLength,omitempty"`
	MaxLength   *int        `json:"maxLength,omitempty"`
	Default     any         `json:"default,omitempty"`
	OneOf       []*Schema   `json:"oneOf,omitempty"`
	AnyOf       []*Schema   `json:"anyOf,omitempty"`
	AllOf       []*Schema   `json:"allOf,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Definitions *Properties `json:"definitions,omitempty"`
}

// Parse decodes schema text into a Schema tree. Numeric literals inside enum
// and default values are kept as json.Number so integers survive round trips.
func Parse(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	s := &Schema{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return s, nil
}

// PropertyCount reports the number of declared properties.
func (s *Schema) PropertyCount() int {
	if s == nil {
		return 0
	}
	return s.Properties.Len()
}

// IsRequired reports whether name appears in the schema's required list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
