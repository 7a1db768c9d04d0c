package domain

import (
	"fmt"
	"strings"
)

type LinkKind string

const (
	LinkPDF     LinkKind = "pdf"
	LinkDOI     LinkKind = "doi"
	LinkARK     LinkKind = "ark"
	LinkComment LinkKind = "comment"
)

// DownloadKinds are the kinds offered by a card's download menu.
var DownloadKinds = []LinkKind{LinkPDF, LinkDOI, LinkARK}

var baseURLs = map[LinkKind]string{
	LinkPDF:     "https://pdf.rootnodedistillery.eu/",
	LinkDOI:     "https://doi.org/",
	LinkARK:     "https://n2t.net/ark:/",
	LinkComment: "https://forum.rootnodedistillery.eu/",
}

func (k LinkKind) Validate() error {
	if _, ok := baseURLs[k]; !ok {
		return fmt.Errorf("unsupported link kind %q", string(k))
	}
	return nil
}

func BaseURL(kind LinkKind) (string, bool) {
	base, ok := baseURLs[kind]
	return base, ok
}

// ResolveLinkURL returns the base URL of kind followed by the trimmed
// identifier. Identifiers are trusted curated data and are concatenated as-is.
// An empty identifier or an unknown kind yields ok == false: the link is
// disabled.
func ResolveLinkURL(kind LinkKind, identifier string) (url string, ok bool) {
	base, known := baseURLs[kind]
	identifier = strings.TrimSpace(identifier)
	if !known || identifier == "" {
		return "", false
	}
	return base + identifier, true
}
