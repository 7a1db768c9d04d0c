package domain_test

import (
	"strings"
	"testing"

	"articlecards/internal/modules/articles/domain"
)

func TestResolveLinkURLConcatenatesTrimmedIdentifier(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind domain.LinkKind
		id   string
		want string
	}{
		{domain.LinkPDF, "paper-1.pdf", "https://pdf.rootnodedistillery.eu/paper-1.pdf"},
		{domain.LinkDOI, " 10.1/x ", "https://doi.org/10.1/x"},
		{domain.LinkARK, "12345/abc", "https://n2t.net/ark:/12345/abc"},
		{domain.LinkComment, "t/42", "https://forum.rootnodedistillery.eu/t/42"},
		{domain.LinkDOI, "a b?c=d&e#f", "https://doi.org/a b?c=d&e#f"},
	}
	for _, tc := range cases {
		got, ok := domain.ResolveLinkURL(tc.kind, tc.id)
		if !ok || got != tc.want {
			t.Fatalf("resolve %s %q: got %q ok=%v, want %q", tc.kind, tc.id, got, ok, tc.want)
		}
	}
}

func TestResolveLinkURLDisabledForEmptyIdentifier(t *testing.T) {
	t.Parallel()
	for _, kind := range []domain.LinkKind{domain.LinkPDF, domain.LinkDOI, domain.LinkARK, domain.LinkComment} {
		for _, id := range []string{"", "   ", "\t\n"} {
			got, ok := domain.ResolveLinkURL(kind, id)
			if ok || got != "" {
				t.Fatalf("%s %q should be disabled, got %q", kind, id, got)
			}
			base, _ := domain.BaseURL(kind)
			if got == base {
				t.Fatalf("disabled link must never equal the base URL")
			}
		}
	}
	if _, ok := domain.ResolveLinkURL("mirror", "x"); ok {
		t.Fatalf("unknown kind should be disabled")
	}
}

func TestLinkKindValidate(t *testing.T) {
	t.Parallel()
	if err := domain.LinkDOI.Validate(); err != nil {
		t.Fatalf("doi should be valid: %v", err)
	}
	if err := domain.LinkKind("mirror").Validate(); err == nil || !strings.Contains(err.Error(), "mirror") {
		t.Fatalf("expected unsupported kind error, got %v", err)
	}
}
