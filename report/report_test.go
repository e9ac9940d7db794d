package report

import (
	"strings"
	"testing"

	"github.com/schemakit/schemakit/schema"
)

func sampleReport(valid bool) *Report {
	res := &schema.ValidationResult{Valid: valid}
	if !valid {
		res.Errors = []schema.ValidationError{
			{Path: "name", Message: "Required field missing"},
			{Path: "age", Message: "Value must be >= 18", Value: 7},
		}
	}
	return New("user.json", "payload.json", res)
}

func TestNewStampsIdentity(t *testing.T) {
	r := sampleReport(true)
	if r.ID == "" {
		t.Fatalf("missing report id")
	}
	if r.GeneratedAt.IsZero() {
		t.Fatalf("missing timestamp")
	}
	other := sampleReport(true)
	if other.ID == r.ID {
		t.Fatalf("report ids must be unique")
	}
}

func TestMarkdownRender(t *testing.T) {
	out, err := Markdown{}.Render(sampleReport(false))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"# Validation Report",
		"**Result: INVALID**",
		"| `name` | Required field missing |",
		"Value must be >= 18",
		"`7`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}

	out, err = Markdown{}.Render(sampleReport(true))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "**Result: VALID**") {
		t.Errorf("valid report not rendered:\n%s", out)
	}
}

func TestHTMLRender(t *testing.T) {
	out, err := HTML{}.Render(sampleReport(false))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"<title>Validation Report</title>",
		`<p class="invalid">`,
		"<td><code>name</code></td>",
		"Value must be &gt;= 18",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalRender(t *testing.T) {
	out, err := Terminal{}.Render(sampleReport(false))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"INVALID", "Required field missing", "user.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}

	out, err = Terminal{}.Render(sampleReport(true))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "VALID") {
		t.Errorf("valid report not rendered:\n%s", out)
	}
}
