package codegen

import (
	"fmt"
	"strings"

	"github.com/schemakit/schemakit/schema"
)

func (g *generator) classSource() string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	for _, nt := range g.types {
		b.WriteString("\n")
		if !isObjectWithProps(nt.s) {
			// non-object definitions stay type aliases so class fields that
			// reference them still resolve
			g.writeDoc(&b, "", nt.s)
			fmt.Fprintf(&b, "export type %s = %s;\n", nt.name, tsType(nt.s, ""))
			continue
		}
		g.writeClass(&b, nt)
	}
	return b.String()
}

func (g *generator) writeClass(b *strings.Builder, nt namedType) {
	s := nt.s
	ind1 := g.indent
	ind2 := ind1 + g.indent
	ind3 := ind2 + g.indent

	g.writeDoc(b, "", s)
	fmt.Fprintf(b, "export class %s {\n", nt.name)

	// field declarations use camelCase names; the wire names survive only in
	// the constructor and toJSON
	for _, prop := range s.Properties.Keys() {
		child, _ := s.Properties.Get(prop)
		fmt.Fprintf(b, "%s%s: %s;\n", ind1, CamelCase(prop), tsType(child, nt.name+PascalCase(prop)))
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "%sconstructor(data: Record<string, any> = {}) {\n", ind1)
	for _, prop := range s.Properties.Keys() {
		child, _ := s.Properties.Get(prop)
		fmt.Fprintf(b, "%sthis.%s = data[%q] ?? %s;\n", ind2, CamelCase(prop), prop, defaultLiteral(child))
	}
	fmt.Fprintf(b, "%s}\n", ind1)

	b.WriteString("\n")
	fmt.Fprintf(b, "%svalidate(): { valid: boolean; errors: { path: string; message: string }[] } {\n", ind1)
	fmt.Fprintf(b, "%sconst errors: { path: string; message: string }[] = [];\n", ind2)
	for _, prop := range s.Properties.Keys() {
		child, _ := s.Properties.Get(prop)
		field := "this." + CamelCase(prop)
		path := CamelCase(prop)
		if s.IsRequired(prop) {
			fmt.Fprintf(b, "%sif (%s === undefined || %s === null) {\n", ind2, field, field)
			fmt.Fprintf(b, "%serrors.push({ path: %q, message: \"Required field missing\" });\n", ind3, path)
			fmt.Fprintf(b, "%s}\n", ind2)
		}
		if child == nil {
			continue
		}
		if child.MinLength != nil {
			fmt.Fprintf(b, "%sif (typeof %s === \"string\" && %s.length < %d) {\n", ind2, field, field, *child.MinLength)
			fmt.Fprintf(b, "%serrors.push({ path: %q, message: \"String must be at least %d characters\" });\n", ind3, path, *child.MinLength)
			fmt.Fprintf(b, "%s}\n", ind2)
		}
		if child.Minimum != nil {
			min := formatFloat(*child.Minimum)
			fmt.Fprintf(b, "%sif (typeof %s === \"number\" && %s < %s) {\n", ind2, field, field, min)
			fmt.Fprintf(b, "%serrors.push({ path: %q, message: \"Value must be >= %s\" });\n", ind3, path, min)
			fmt.Fprintf(b, "%s}\n", ind2)
		}
		if len(child.Enum) > 0 {
			literals := make([]string, len(child.Enum))
			for i, v := range child.Enum {
				literals[i] = jsonLiteral(v)
			}
			fmt.Fprintf(b, "%sif (![%s].includes(%s)) {\n", ind2, strings.Join(literals, ", "), field)
			fmt.Fprintf(b, "%serrors.push({ path: %q, message: \"Value must be one of: %s\" });\n", ind3, path, strings.Join(literals, ", "))
			fmt.Fprintf(b, "%s}\n", ind2)
		}
	}
	fmt.Fprintf(b, "%sreturn { valid: errors.length === 0, errors };\n", ind2)
	fmt.Fprintf(b, "%s}\n", ind1)

	b.WriteString("\n")
	fmt.Fprintf(b, "%stoJSON(): Record<string, any> {\n", ind1)
	fmt.Fprintf(b, "%sreturn {\n", ind2)
	for _, prop := range s.Properties.Keys() {
		fmt.Fprintf(b, "%s%q: this.%s,\n", ind3, prop, CamelCase(prop))
	}
	fmt.Fprintf(b, "%s};\n", ind2)
	fmt.Fprintf(b, "%s}\n", ind1)

	b.WriteString("\n")
	fmt.Fprintf(b, "%sstatic fromJSON(data: Record<string, any>): %s {\n", ind1, nt.name)
	fmt.Fprintf(b, "%sreturn new %s(data);\n", ind2, nt.name)
	fmt.Fprintf(b, "%s}\n", ind1)
	b.WriteString("}\n")
}

// defaultLiteral renders the constructor fallback for a property: explicit
// default, first enum entry, then the primitive zero value. Nested objects
// fall back to an empty object rather than recursing.
func defaultLiteral(s *schema.Schema) string {
	if s == nil {
		return "null"
	}
	if s.Default != nil {
		return jsonLiteral(s.Default)
	}
	if len(s.Enum) > 0 {
		return jsonLiteral(s.Enum[0])
	}
	switch s.Type.Primary() {
	case schema.TypeString:
		return `""`
	case schema.TypeNumber, schema.TypeInteger:
		if s.Minimum != nil {
			return formatFloat(*s.Minimum)
		}
		return "0"
	case schema.TypeBoolean:
		return "false"
	case schema.TypeArray:
		return "[]"
	case schema.TypeObject:
		return "{}"
	default:
		return "null"
	}
}

func formatFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", f), "0"), ".")
}
