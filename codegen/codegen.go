// Package codegen translates a schema tree into TypeScript source artifacts:
// a statically-typed interface declaration and an equivalent runtime class
// with embedded validation and (de)serialization.
package codegen

import (
	"fmt"
	"strings"

	"github.com/schemakit/schemakit/schema"
)

const generatedHeader = "// Code generated by schemakit. DO NOT EDIT.\n"

// Options control artifact generation.
type Options struct {
	// ExportName names the top-level generated type. Defaults to "Generated".
	ExportName string
	// IncludeDescriptions emits schema descriptions as doc comments.
	IncludeDescriptions bool
	// IndentSize is the number of spaces per indentation level. Defaults to 4.
	IndentSize int
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() Options {
	return Options{ExportName: "Generated", IncludeDescriptions: true, IndentSize: 4}
}

// Artifacts holds the two generated source texts.
type Artifacts struct {
	TypeSource  string
	ClassSource string
}

type namedType struct {
	name string
	s    *schema.Schema
}

type generator struct {
	opts   Options
	indent string
	types  []namedType
	seen   map[string]bool
}

// Generate produces interface and class sources for the schema. Definitions
// are hoisted into independent named types ahead of the main type, and nested
// object properties are hoisted recursively under concatenated names.
func Generate(s *schema.Schema, opts Options) (*Artifacts, error) {
	if s == nil {
		return nil, schema.ErrNilSchema
	}
	if opts.ExportName == "" {
		opts.ExportName = "Generated"
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = 4
	}

	g := &generator{
		opts:   opts,
		indent: strings.Repeat(" ", opts.IndentSize),
		seen:   make(map[string]bool),
	}
	for _, key := range s.Definitions.Keys() {
		def, _ := s.Definitions.Get(key)
		g.hoist(PascalCase(key), def)
	}
	g.hoist(PascalCase(opts.ExportName), s)

	return &Artifacts{
		TypeSource:  g.interfaceSource(),
		ClassSource: g.classSource(),
	}, nil
}

// hoist registers a named type, first hoisting any nested object property so
// that inner types always precede the types that reference them.
func (g *generator) hoist(name string, s *schema.Schema) {
	if s == nil || g.seen[name] {
		return
	}
	g.seen[name] = true
	if isObjectWithProps(s) {
		for _, prop := range s.Properties.Keys() {
			child, _ := s.Properties.Get(prop)
			if isObjectWithProps(child) {
				g.hoist(name+PascalCase(prop), child)
			}
		}
	}
	g.types = append(g.types, namedType{name: name, s: s})
}

func isObjectWithProps(s *schema.Schema) bool {
	return s != nil && s.Type.Contains(schema.TypeObject) && s.Properties.Len() > 0
}

func (g *generator) interfaceSource() string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	for _, nt := range g.types {
		b.WriteString("\n")
		g.writeInterface(&b, nt)
	}
	return b.String()
}

func (g *generator) writeInterface(b *strings.Builder, nt namedType) {
	s := nt.s
	g.writeDoc(b, "", s)
	if !isObjectWithProps(s) {
		fmt.Fprintf(b, "export type %s = %s;\n", nt.name, tsType(s, ""))
		return
	}
	fmt.Fprintf(b, "export interface %s {\n", nt.name)
	for _, prop := range s.Properties.Keys() {
		child, _ := s.Properties.Get(prop)
		g.writeDoc(b, g.indent, child)
		optional := "?"
		if s.IsRequired(prop) {
			optional = ""
		}
		fmt.Fprintf(b, "%s%s%s: %s;\n", g.indent, tsPropName(prop), optional, tsType(child, nt.name+PascalCase(prop)))
	}
	b.WriteString("}\n")
}

func (g *generator) writeDoc(b *strings.Builder, indent string, s *schema.Schema) {
	if !g.opts.IncludeDescriptions || s == nil {
		return
	}
	text := s.Description
	if text == "" {
		text = s.Title
	}
	if text == "" {
		return
	}
	fmt.Fprintf(b, "%s/** %s */\n", indent, text)
}
