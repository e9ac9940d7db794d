package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Type identifies one of the JSON Schema primitive types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
	TypeNull    Type = "null"
)

// TypeSet holds the declared type(s) of a schema node. JSON Schema allows
// "type" to be a single string or an array of strings; an empty set means the
// node is unconstrained.
type TypeSet []Type

// Contains reports whether t is among the declared types.
func (ts TypeSet) Contains(t Type) bool {
	for _, v := range ts {
		if v == t {
			return true
		}
	}
	return false
}

// Primary returns the first declared type, or "" when unconstrained.
func (ts TypeSet) Primary() Type {
	if len(ts) == 0 {
		return ""
	}
	return ts[0]
}

// String renders the set for error messages, e.g. "string" or "string or null".
func (ts TypeSet) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = string(t)
	}
	return strings.Join(parts, " or ")
}

// UnmarshalJSON accepts either a single type name or an array of names.
func (ts *TypeSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*ts = TypeSet{Type(single)}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("type must be a string or array of strings: %w", err)
	}
	set := make(TypeSet, len(many))
	for i, name := range many {
		set[i] = Type(name)
	}
	*ts = set
	return nil
}

// MarshalJSON emits a bare string for a single type and an array otherwise.
func (ts TypeSet) MarshalJSON() ([]byte, error) {
	if len(ts) == 1 {
		return json.Marshal(string(ts[0]))
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = string(t)
	}
	return json.Marshal(names)
}

// TypeOf classifies a decoded JSON value. Numbers without a fractional part
// classify as "integer", never "number"; documents decoded with UseNumber and
// plain float64 decoding are both supported.
func TypeOf(v any) Type {
	switch val := v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	case *Object:
		return TypeObject
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return TypeInteger
		}
		if f, err := val.Float64(); err == nil && isIntegral(f) {
			return TypeInteger
		}
		return TypeNumber
	case float64:
		if isIntegral(val) {
			return TypeInteger
		}
		return TypeNumber
	case float32:
		if isIntegral(float64(val)) {
			return TypeInteger
		}
		return TypeNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger
	default:
		return ""
	}
}

func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// NumberOf extracts the float64 value of a numeric JSON value.
func NumberOf(v any) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}
