// Package template synthesizes a minimal default document conforming to a
// schema's declared shape.
package template

import (
	"github.com/schemakit/schemakit/schema"
)

// Generate builds a template value for the schema. Object roots produce an
// ordered object following property declaration order; array roots produce an
// empty array; anything else degrades to an empty object. Arrays are never
// populated with sample elements.
func Generate(s *schema.Schema) any {
	if s == nil {
		return schema.NewObject()
	}
	if s.Type.Contains(schema.TypeArray) {
		return []any{}
	}
	if !s.Type.Contains(schema.TypeObject) || s.Properties.Len() == 0 {
		return schema.NewObject()
	}
	obj := schema.NewObject()
	for _, name := range s.Properties.Keys() {
		prop, _ := s.Properties.Get(name)
		obj.Set(name, valueFor(prop))
	}
	return obj
}

// valueFor computes the template value of one property. Priority: explicit
// default, first enum entry, then a zero value for the declared type.
func valueFor(prop *schema.Schema) any {
	if prop == nil {
		return nil
	}
	if prop.Default != nil {
		return prop.Default
	}
	if len(prop.Enum) > 0 {
		return prop.Enum[0]
	}
	switch prop.Type.Primary() {
	case schema.TypeString:
		return ""
	case schema.TypeInteger:
		if prop.Minimum != nil {
			return int64(*prop.Minimum)
		}
		return int64(0)
	case schema.TypeNumber:
		if prop.Minimum != nil {
			return *prop.Minimum
		}
		return float64(0)
	case schema.TypeBoolean:
		return false
	case schema.TypeArray:
		return []any{}
	case schema.TypeObject:
		return Generate(prop)
	default:
		return nil
	}
}
