package codegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/schemakit/schemakit/schema"
)

// tsType maps a schema node to a TypeScript type expression. hoistedName is
// the name a nested object property was hoisted under; contexts with no
// hoisted name (array items, combinator branches) pass "" and bare objects
// degrade to an open string-keyed mapping.
func tsType(s *schema.Schema, hoistedName string) string {
	if s == nil {
		return "any"
	}
	if len(s.Enum) > 0 {
		return literalUnion(s.Enum)
	}
	if s.Ref != "" {
		return PascalCase(refName(s.Ref))
	}
	if len(s.OneOf) > 0 {
		return branchUnion(s.OneOf, " | ")
	}
	if len(s.AnyOf) > 0 {
		return branchUnion(s.AnyOf, " | ")
	}
	if len(s.AllOf) > 0 {
		return branchUnion(s.AllOf, " & ")
	}
	if len(s.Type) == 0 {
		return "any"
	}
	if len(s.Type) > 1 {
		parts := make([]string, len(s.Type))
		for i, t := range s.Type {
			parts[i] = primitiveType(t, s, hoistedName)
		}
		return strings.Join(parts, " | ")
	}
	return primitiveType(s.Type.Primary(), s, hoistedName)
}

func primitiveType(t schema.Type, s *schema.Schema, hoistedName string) string {
	switch t {
	case schema.TypeString:
		return "string"
	case schema.TypeNumber, schema.TypeInteger:
		return "number"
	case schema.TypeBoolean:
		return "boolean"
	case schema.TypeNull:
		return "null"
	case schema.TypeArray:
		if s.Items == nil {
			return "any[]"
		}
		item := tsType(s.Items, "")
		if strings.ContainsAny(item, "|&") {
			return "(" + item + ")[]"
		}
		return item + "[]"
	case schema.TypeObject:
		if s.Properties.Len() > 0 && hoistedName != "" {
			return hoistedName
		}
		return "Record<string, any>"
	default:
		return "any"
	}
}

func branchUnion(branches []*schema.Schema, sep string) string {
	parts := make([]string, len(branches))
	for i, b := range branches {
		parts[i] = tsType(b, "")
	}
	return strings.Join(parts, sep)
}

func literalUnion(enum []any) string {
	parts := make([]string, len(enum))
	for i, v := range enum {
		parts[i] = jsonLiteral(v)
	}
	return strings.Join(parts, " | ")
}

// jsonLiteral renders a decoded JSON value as TypeScript source text.
func jsonLiteral(v any) string {
	enc, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(enc)
}

// refName extracts the trailing segment of a reference string:
// "#/definitions/user_profile" -> "user_profile".
func refName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
