package out

import (
	"testing"

	"articlecards/internal/modules/articles/domain"
	"articlecards/internal/platform/dom"
)

func renderedPage(t *testing.T, records []domain.Record) *DOMPage {
	t.Helper()
	page, err := NewDOMPage(defaultPageMarkup, nil)
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	p := page.(*DOMPage)
	p.Render(records)
	return p
}

func TestSetLinkPresentationIsIdempotent(t *testing.T) {
	t.Parallel()
	doc, err := dom.ParseString(`<a id="l" href="x" style="color: red;">l</a>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	link := doc.Find("#l")

	setLinkPresentation(link, "", false)
	first, _ := link.Attr("style")
	setLinkPresentation(link, "", false)
	second, _ := link.Attr("style")
	if first != second {
		t.Fatalf("disabling twice changed style: %q then %q", first, second)
	}
	if want := "color: red; pointer-events: none; opacity: 0.45; cursor: default;"; first != want {
		t.Fatalf("unexpected disabled style %q", first)
	}

	setLinkPresentation(link, "https://doi.org/1", true)
	setLinkPresentation(link, "https://doi.org/1", true)
	if style, _ := link.Attr("style"); style != "color: red;" {
		t.Fatalf("enabling should keep only the unrelated declarations, got %q", style)
	}
	if href, _ := link.Attr("href"); href != "https://doi.org/1" {
		t.Fatalf("unexpected href %q", href)
	}
	if v, _ := link.Attr("aria-disabled"); v != "false" {
		t.Fatalf("unexpected aria-disabled %q", v)
	}
}

func TestDownloadLinksAreResolvedOnEveryOpen(t *testing.T) {
	t.Parallel()
	p := renderedPage(t, []domain.Record{{ID: "A1", Title: "T", Comment: "t/1"}})
	card := p.cards().First()

	// Identifiers changed after render are picked up by the next open.
	card.SetAttr("data-doi", "10.9/late")
	card.SetAttr("data-comment", "t/2")
	if _, err := p.Dispatch(domain.Click(domain.Locator{Card: 0, Part: domain.PartDownload})); err != nil {
		t.Fatalf("open menu: %v", err)
	}
	item := card.Find(`.download-menu-item[data-kind="doi"]`)
	if href, _ := item.Attr("href"); href != "https://doi.org/10.9/late" {
		t.Fatalf("doi link was not re-resolved, href=%q", href)
	}
	if href, _ := card.Find(selComment).Attr("href"); href != "https://forum.rootnodedistillery.eu/t/1" {
		t.Fatalf("comment link is resolved once at render, href=%q", href)
	}

	card.RemoveAttr("data-doi")
	// close, then reopen
	p.Dispatch(domain.Click(domain.Locator{Card: 0, Part: domain.PartDownload}))
	p.Dispatch(domain.Click(domain.Locator{Card: 0, Part: domain.PartDownload}))
	if v, _ := item.Attr("aria-disabled"); v != "true" {
		t.Fatalf("doi link should be disabled once its identifier is gone")
	}
}

func TestRenderResetsSelection(t *testing.T) {
	t.Parallel()
	p := renderedPage(t, []domain.Record{{ID: "A1"}, {ID: "B2"}})
	if _, err := p.Dispatch(domain.Click(domain.Locator{Card: 1, Part: domain.PartDownload})); err != nil {
		t.Fatalf("open menu: %v", err)
	}
	if p.selection.OpenMenu() == nil || p.selection.ExpandedCard() == nil {
		t.Fatalf("expected an open menu and expanded card")
	}
	p.Render([]domain.Record{{ID: "C3"}})
	if p.selection.OpenMenu() != nil || p.selection.ExpandedCard() != nil {
		t.Fatalf("render should drop references to discarded cards")
	}
	state := p.Snapshot()
	if len(state.Cards) != 1 || state.Cards[0].ID != "C3" {
		t.Fatalf("unexpected cards after re-render: %+v", state.Cards)
	}
}

func TestClassifyIgnoresTemplateContent(t *testing.T) {
	t.Parallel()
	p := renderedPage(t, []domain.Record{{ID: "A1"}})
	inTemplate := p.doc.Find("template " + selTitle).First()
	if inTemplate.Length() == 0 {
		t.Fatalf("expected a title inside the card template")
	}
	if hit := p.classify(inTemplate.Get(0)); hit.Zone != domain.ZoneOther {
		t.Fatalf("elements outside the list are not interaction zones, got %s", hit.Zone)
	}
	rendered := p.cards().First().Find(selButton).Get(0)
	hit := p.classify(rendered)
	if hit.Zone != domain.ZoneDownloadButton || hit.Card == nil || hit.Menu == nil {
		t.Fatalf("unexpected hit %+v", hit)
	}
}
