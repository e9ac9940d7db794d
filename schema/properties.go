package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Properties is a name -> schema mapping that preserves the declaration order
// of the underlying JSON object. Go maps would scramble the order, and both
// validation error ordering and generated artifacts depend on it.
type Properties struct {
	keys    []string
	entries map[string]*Schema
}

// NewProperties returns an empty ordered mapping.
func NewProperties() *Properties {
	return &Properties{entries: make(map[string]*Schema)}
}

// Set adds or replaces an entry, keeping first-insertion order.
func (p *Properties) Set(name string, s *Schema) {
	if p.entries == nil {
		p.entries = make(map[string]*Schema)
	}
	if _, exists := p.entries[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.entries[name] = s
}

// Get returns the schema for name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil || p.entries == nil {
		return nil, false
	}
	s, ok := p.entries[name]
	return s, ok
}

// Keys returns the names in declaration order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len reports the number of entries.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// UnmarshalJSON decodes a JSON object while recording key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties must be an object, got %v", tok)
	}
	p.keys = nil
	p.entries = make(map[string]*Schema)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected property key %v", keyTok)
		}
		child := &Schema{}
		if err := dec.Decode(child); err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		p.Set(key, child)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the mapping in declaration order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		child, _ := p.Get(key)
		enc, err := json.Marshal(child)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Object is an insertion-ordered JSON object value. The template generator
// emits these so that generated documents follow schema declaration order.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set adds or replaces a field, keeping first-insertion order.
func (o *Object) Set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len reports the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// MarshalJSON encodes fields in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		v, _ := o.Get(key)
		enc, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
