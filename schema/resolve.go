package schema

import "strings"

const definitionsPrefix = "#/definitions/"

// DefinitionName extracts the definition key from a local reference string.
// It returns false for external or non-definitions references.
func DefinitionName(ref string) (string, bool) {
	if !strings.HasPrefix(ref, definitionsPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(ref, definitionsPrefix)
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// ResolveRefs returns a copy of root in which every "$ref" pointing at a
// "#/definitions/" entry has been substituted by the referenced schema.
// External references, unknown definition names and reference cycles are left
// in place untouched; downstream consumers treat an unresolved $ref node as
// vacuously passing. The input tree is never mutated.
func ResolveRefs(root *Schema) *Schema {
	if root == nil {
		return nil
	}
	r := &resolver{root: root, visiting: make(map[string]bool)}
	return r.resolve(root)
}

type resolver struct {
	root     *Schema
	visiting map[string]bool
}

func (r *resolver) resolve(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		name, ok := DefinitionName(s.Ref)
		if !ok {
			return s
		}
		def, found := r.root.Definitions.Get(name)
		if !found || r.visiting[name] {
			// unknown target, or a cycle back-edge: keep the ref inert
			return s
		}
		r.visiting[name] = true
		resolved := r.resolve(def)
		delete(r.visiting, name)
		return resolved
	}

	out := *s
	out.Items = r.resolve(s.Items)
	out.Properties = r.resolveProperties(s.Properties)
	out.OneOf = r.resolveList(s.OneOf)
	out.AnyOf = r.resolveList(s.AnyOf)
	out.AllOf = r.resolveList(s.AllOf)
	return &out
}

func (r *resolver) resolveProperties(props *Properties) *Properties {
	if props == nil {
		return nil
	}
	out := NewProperties()
	for _, name := range props.Keys() {
		child, _ := props.Get(name)
		out.Set(name, r.resolve(child))
	}
	return out
}

func (r *resolver) resolveList(list []*Schema) []*Schema {
	if len(list) == 0 {
		return nil
	}
	out := make([]*Schema, len(list))
	for i, s := range list {
		out[i] = r.resolve(s)
	}
	return out
}
