package registry

import "strings"

// Draft identifies a JSON Schema specification draft by its meta-schema URL.
type Draft struct {
	Name string
	URL  string
}

// Known JSON Schema drafts, oldest first.
var drafts = []Draft{
	{Name: "draft-04", URL: "http://json-schema.org/draft-04/schema#"},
	{Name: "draft-06", URL: "http://json-schema.org/draft-06/schema#"},
	{Name: "draft-07", URL: "http://json-schema.org/draft-07/schema#"},
	{Name: "2019-09", URL: "https://json-schema.org/draft/2019-09/schema"},
	{Name: "2020-12", URL: "https://json-schema.org/draft/2020-12/schema"},
}

// Drafts returns the known drafts in publication order.
func Drafts() []Draft {
	out := make([]Draft, len(drafts))
	copy(out, drafts)
	return out
}

// DetectDraft matches a "$schema" URI against the known drafts, tolerating
// http/https and trailing "#" variations.
func DetectDraft(uri string) (Draft, bool) {
	norm := normalizeDraftURI(uri)
	for _, d := range drafts {
		if normalizeDraftURI(d.URL) == norm {
			return d, true
		}
	}
	return Draft{}, false
}

func normalizeDraftURI(uri string) string {
	uri = strings.TrimSpace(uri)
	uri = strings.TrimPrefix(uri, "http://")
	uri = strings.TrimPrefix(uri, "https://")
	return strings.TrimSuffix(uri, "#")
}
