package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Markdown renders a report as a markdown document with an error table.
type Markdown struct{}

// Render implements Renderer.
func (Markdown) Render(r *Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Validation Report\n\n")
	fmt.Fprintf(&b, "- **Schema**: %s\n", r.SchemaName)
	fmt.Fprintf(&b, "- **Document**: %s\n", r.DocumentName)
	fmt.Fprintf(&b, "- **Generated**: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- **Report ID**: %s\n\n", r.ID)

	if r.Result == nil || r.Result.Valid {
		b.WriteString("**Result: VALID** — the document conforms to the schema.\n")
		return b.String(), nil
	}

	fmt.Fprintf(&b, "**Result: INVALID** — %d error(s) found.\n\n", len(r.Result.Errors))
	b.WriteString("| Path | Message | Value |\n")
	b.WriteString("|------|---------|-------|\n")
	for _, e := range r.Result.Errors {
		path := e.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", path, escapePipes(e.Message), escapePipes(valueCell(e.Value)))
	}
	return b.String(), nil
}

func valueCell(v any) string {
	if v == nil {
		return ""
	}
	enc, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return "`" + string(enc) + "`"
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
