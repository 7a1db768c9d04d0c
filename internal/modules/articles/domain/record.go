package domain

import "strings"

const (
	MissingTitle = "[Missing article-title]"

	PlaceholderID    = "[No articles]"
	PlaceholderTitle = "No articles"
	PlaceholderBrief = "Failed to load ARTICLES.json."
)

// Record is one publication entry as delivered by the data source. Every field
// is optional; ID is not required to be unique.
type Record struct {
	ID       string
	Title    string
	Brief    string
	Abstract string
	PDF      string
	DOI      string
	ARK      string
	Comment  string
}

// NormalizeText collapses whitespace runs to one space and trims the ends.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// DisplayTitle is the normalized title, falling back to the id and then to
// MissingTitle.
func (r Record) DisplayTitle() string {
	if title := NormalizeText(r.Title); title != "" {
		return title
	}
	if id := strings.TrimSpace(r.ID); id != "" {
		return id
	}
	return MissingTitle
}

// Identifier returns the trimmed identifier stored for kind.
func (r Record) Identifier(kind LinkKind) string {
	switch kind {
	case LinkPDF:
		return strings.TrimSpace(r.PDF)
	case LinkDOI:
		return strings.TrimSpace(r.DOI)
	case LinkARK:
		return strings.TrimSpace(r.ARK)
	case LinkComment:
		return strings.TrimSpace(r.Comment)
	default:
		return ""
	}
}
