// Package report renders validation results for human consumption in
// terminal, markdown and HTML form. Renderers are pure string templating over
// a finished ValidationResult.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/schemakit/schemakit/schema"
)

// Report wraps a validation result with the identity of the run.
type Report struct {
	ID           string                   `json:"id"`
	SchemaName   string                   `json:"schema"`
	DocumentName string                   `json:"document"`
	GeneratedAt  time.Time                `json:"generatedAt"`
	Result       *schema.ValidationResult `json:"result"`
}

// New stamps a fresh report for a validation run.
func New(schemaName, documentName string, result *schema.ValidationResult) *Report {
	return &Report{
		ID:           uuid.NewString(),
		SchemaName:   schemaName,
		DocumentName: documentName,
		GeneratedAt:  time.Now().UTC(),
		Result:       result,
	}
}

// Renderer produces one presentation format of a report.
type Renderer interface {
	Render(r *Report) (string, error)
}
