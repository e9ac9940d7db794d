package schema

// ValidationError describes a single constraint violation found in a document.
type ValidationError struct {
	// Path locates the offending value inside the document using dot and
	// bracket qualifiers ("user.tags[2]"). The empty string is the root.
	Path    string `json:"path"`
	Message string `json:"message"`
	// Value carries the offending value where one exists; it is omitted for
	// missing-field errors.
	Value any `json:"value,omitempty"`
}

// ValidationResult is the outcome of validating one document against one
// schema. Errors appear in discovery order: depth-first, properties in schema
// declaration order, array elements by ascending index.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}
