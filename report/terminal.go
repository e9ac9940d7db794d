package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Terminal renders a report with ANSI styling for interactive use.
type Terminal struct{}

// Render implements Renderer.
func (Terminal) Render(r *Report) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Validation Report"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("schema:"), r.SchemaName)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("document:"), r.DocumentName)

	if r.Result == nil || r.Result.Valid {
		b.WriteString(validStyle.Render("VALID"))
		b.WriteString(" document conforms to the schema\n")
		return b.String(), nil
	}

	b.WriteString(invalidStyle.Render("INVALID"))
	fmt.Fprintf(&b, " %d error(s)\n", len(r.Result.Errors))
	for _, e := range r.Result.Errors {
		path := e.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(&b, "  %s %s", pathStyle.Render(path), e.Message)
		if e.Value != nil {
			if enc, err := json.Marshal(e.Value); err == nil {
				fmt.Fprintf(&b, " %s", labelStyle.Render("(got "+string(enc)+")"))
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
