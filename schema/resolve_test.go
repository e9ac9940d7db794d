package schema

import "testing"

func TestResolveRefsSubstitutesDefinitions(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"properties": {
			"address": {"$ref": "#/definitions/address"}
		},
		"definitions": {
			"address": {
				"type": "object",
				"properties": {"street": {"type": "string"}},
				"required": ["street"]
			}
		}
	}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	resolved := ResolveRefs(s)

	addr, ok := resolved.Properties.Get("address")
	if !ok {
		t.Fatalf("address property missing after resolve")
	}
	if addr.Ref != "" {
		t.Fatalf("$ref not substituted: %q", addr.Ref)
	}
	if !addr.Type.Contains(TypeObject) || !addr.IsRequired("street") {
		t.Fatalf("definition body not carried over: %+v", addr)
	}

	// the input tree must stay untouched
	orig, _ := s.Properties.Get("address")
	if orig.Ref != "#/definitions/address" {
		t.Fatalf("input schema mutated: %+v", orig)
	}
}

func TestResolveRefsLeavesUnknownRefInert(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"properties": {
			"ext": {"$ref": "https://example.com/other.json"},
			"missing": {"$ref": "#/definitions/nope"}
		}
	}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	resolved := ResolveRefs(s)

	ext, _ := resolved.Properties.Get("ext")
	if ext.Ref != "https://example.com/other.json" {
		t.Fatalf("external ref should stay inert, got %q", ext.Ref)
	}
	missing, _ := resolved.Properties.Get("missing")
	if missing.Ref != "#/definitions/nope" {
		t.Fatalf("unknown ref should stay inert, got %q", missing.Ref)
	}
}

func TestResolveRefsBreaksCycles(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"properties": {"node": {"$ref": "#/definitions/node"}},
		"definitions": {
			"node": {
				"type": "object",
				"properties": {
					"value": {"type": "string"},
					"next": {"$ref": "#/definitions/node"}
				}
			}
		}
	}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	resolved := ResolveRefs(s)

	node, _ := resolved.Properties.Get("node")
	if node.Ref != "" {
		t.Fatalf("outer ref not substituted")
	}
	next, _ := node.Properties.Get("next")
	if next.Ref != "#/definitions/node" {
		t.Fatalf("cycle back-edge should stay inert, got %+v", next)
	}
}

func TestDefinitionName(t *testing.T) {
	if name, ok := DefinitionName("#/definitions/address"); !ok || name != "address" {
		t.Fatalf("got %q %v", name, ok)
	}
	if _, ok := DefinitionName("https://example.com/s.json"); ok {
		t.Fatalf("external ref must not resolve")
	}
	if _, ok := DefinitionName("#/definitions/a/b"); ok {
		t.Fatalf("nested pointer must not resolve")
	}
}
