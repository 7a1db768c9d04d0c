package out

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	hclog "github.com/hashicorp/go-hclog"
	xhtml "golang.org/x/net/html"

	"articlecards/internal/modules/articles/domain"
	articlesout "articlecards/internal/modules/articles/port/out"
	"articlecards/internal/platform/dom"
	apperrors "articlecards/internal/platform/errors"
)

const (
	cardTemplateID = "article-card-template"
	menuTemplateID = "download-menu-template"

	selList     = ".article-list"
	selCardRoot = "article.article-card"
	selCard     = ".article-card"
	selIDValue  = ".article-id-value"
	selTitle    = ".article-title"
	selBrief    = ".article-brief"
	selAbstract = ".article-abstract-text"
	selComment  = ".comment-btn"
	selMenu     = ".download-menu"
	selButton   = ".download-btn"
	selMenuItem = ".download-menu-item"

	classExpanded   = "expanded"
	classOpen       = "open"
	classLoadFailed = "load-failed"

	disabledOpacity = "0.45"
)

var placeholderMarkup = fmt.Sprintf(
	`<article class="article-card %s" data-id="%s"><table><tr><td class="article-id"><div class="article-id-value">!</div></td><td class="article-content"><h4>%s</h4><p class="article-brief">%s</p></td></tr></table></article>`,
	classLoadFailed,
	html.EscapeString(domain.PlaceholderID),
	html.EscapeString(domain.PlaceholderTitle),
	html.EscapeString(domain.PlaceholderBrief),
)

// DOMPage renders records into a parsed page and drives the selection state
// from events dispatched through it.
type DOMPage struct {
	doc          *dom.Document
	list         *goquery.Selection
	cardTemplate *dom.Template
	menuTemplate *dom.Template
	selection    *domain.Selection
	logger       hclog.Logger
	inert        bool
}

// NewDOMPage parses markup. A page without a card template or list container
// is inert: Render is a no-op and no listeners are registered.
func NewDOMPage(markup string, logger hclog.Logger) (articlesout.Page, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	doc, err := dom.ParseString(markup)
	if err != nil {
		return nil, err
	}
	p := &DOMPage{
		doc:       doc,
		list:      doc.Find(selList).First(),
		selection: domain.NewSelection(),
		logger:    logger,
	}
	cardTemplate, hasCard := doc.Template(cardTemplateID)
	if menuTemplate, ok := doc.Template(menuTemplateID); ok {
		p.menuTemplate = menuTemplate
	}
	if !hasCard || p.list.Length() == 0 {
		logger.Warn("page is inert", "error", apperrors.ErrTemplateMissing, "card_template", hasCard, "list_container", p.list.Length() > 0)
		p.inert = true
		return p, nil
	}
	p.cardTemplate = cardTemplate
	p.bind()
	return p, nil
}

func (p *DOMPage) Render(records []domain.Record) int {
	if p.inert {
		return 0
	}
	// Previous cards are discarded, so are references to them.
	p.selection = domain.NewSelection()
	if len(records) == 0 {
		p.list.SetHtml(placeholderMarkup)
		return 1
	}

	nodes := make([]*xhtml.Node, 0, len(records))
	for _, record := range records {
		card, ok := p.renderCard(record)
		if !ok {
			p.logger.Debug("card template has no card root, skipping record", "id", record.ID)
			continue
		}
		nodes = append(nodes, card.Get(0))
	}
	p.list.Empty()
	p.list.AppendNodes(nodes...)
	return len(nodes)
}

func (p *DOMPage) renderCard(record domain.Record) (*goquery.Selection, bool) {
	card := dom.First(p.cardTemplate.Clone(), selCardRoot)
	if card.Length() == 0 {
		return nil, false
	}

	id := strings.TrimSpace(record.ID)
	if id != "" {
		card.SetAttr("data-id", id)
	}
	for _, kind := range []domain.LinkKind{domain.LinkPDF, domain.LinkDOI, domain.LinkARK, domain.LinkComment} {
		if value := record.Identifier(kind); value != "" {
			card.SetAttr("data-"+string(kind), value)
		}
	}

	card.Find(selIDValue).First().SetText(id)
	if title := card.Find(selTitle).First(); title.Length() > 0 {
		title.SetText(record.DisplayTitle())
		if id != "" {
			title.SetAttr("name", id)
		}
	}
	card.Find(selBrief).First().SetText(domain.NormalizeText(record.Brief))
	card.Find(selAbstract).First().SetText(domain.NormalizeText(record.Abstract))

	// The comment link is resolved once; download links are re-resolved on
	// every menu open.
	if comment := card.Find(selComment).First(); comment.Length() > 0 {
		url, ok := domain.ResolveLinkURL(domain.LinkComment, record.Comment)
		setLinkPresentation(comment, url, ok)
	}
	if host := card.Find(selMenu).First(); host.Length() > 0 && p.menuTemplate != nil {
		host.AppendSelection(p.menuTemplate.Clone())
		refreshMenuLinks(host)
	}
	return card, true
}

// setLinkPresentation makes link point at url, or marks it non-navigable when
// ok is false. Applying it twice with the same input changes nothing.
func setLinkPresentation(link *goquery.Selection, url string, ok bool) {
	if !ok {
		link.SetAttr("href", "#")
		link.SetAttr("aria-disabled", "true")
		dom.SetStyle(link, "pointer-events", "none")
		dom.SetStyle(link, "opacity", disabledOpacity)
		dom.SetStyle(link, "cursor", "default")
		return
	}
	link.SetAttr("href", url)
	link.SetAttr("aria-disabled", "false")
	dom.SetStyle(link, "pointer-events", "")
	dom.SetStyle(link, "opacity", "")
	dom.SetStyle(link, "cursor", "")
}

// refreshMenuLinks resolves every item of menu against the identifiers
// currently stored on the owning card.
func refreshMenuLinks(menu *goquery.Selection) {
	card := menu.Closest(selCard)
	if card.Length() == 0 {
		return
	}
	menu.Find(selMenuItem).Each(func(_ int, item *goquery.Selection) {
		kind := domain.LinkKind(item.AttrOr("data-kind", ""))
		url, ok := "", false
		if isDownloadKind(kind) {
			url, ok = domain.ResolveLinkURL(kind, card.AttrOr("data-"+string(kind), ""))
		}
		setLinkPresentation(item, url, ok)
	})
}

func isDownloadKind(kind domain.LinkKind) bool {
	for _, k := range domain.DownloadKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (p *DOMPage) cards() *goquery.Selection {
	return p.list.ChildrenFiltered(selCard)
}

func (p *DOMPage) Snapshot() domain.PageState {
	state := domain.PageState{ExpandedIndex: -1, OpenMenuIndex: -1}
	expanded := p.selection.ExpandedCard()
	open := p.selection.OpenMenu()
	p.cards().Each(func(i int, card *goquery.Selection) {
		cs := domain.CardState{
			Index:       i,
			ID:          card.AttrOr("data-id", ""),
			Brief:       card.Find(selBrief).First().Text(),
			Abstract:    card.Find(selAbstract).First().Text(),
			Placeholder: card.HasClass(classLoadFailed),
			Expanded:    card.HasClass(classExpanded),
		}
		title := card.Find(selTitle).First()
		if title.Length() > 0 {
			cs.Title = title.Text()
			cs.Anchor = title.AttrOr("name", "")
		} else {
			cs.Title = card.Find("h4").First().Text()
		}

		menu := card.Find(selMenu).First()
		if menu.Length() > 0 {
			cs.HasMenu = true
			cs.MenuOpen = menu.HasClass(classOpen)
			cs.ButtonExpanded = menu.Find(selButton).First().AttrOr("aria-expanded", "") == "true"
			menu.Find(selMenuItem).Each(func(_ int, item *goquery.Selection) {
				cs.Links = append(cs.Links, linkState(item, domain.LinkKind(item.AttrOr("data-kind", ""))))
			})
			if open != nil && open == domain.Menu(domMenu{node: menu.Get(0)}) {
				state.OpenMenuIndex = i
			}
		}
		if comment := card.Find(selComment).First(); comment.Length() > 0 {
			link := linkState(comment, domain.LinkComment)
			cs.Comment = &link
		}
		if expanded != nil && expanded == domain.Card(domCard{node: card.Get(0)}) {
			state.ExpandedIndex = i
		}
		state.Cards = append(state.Cards, cs)
	})
	return state
}

func linkState(link *goquery.Selection, kind domain.LinkKind) domain.LinkState {
	enabled := link.AttrOr("aria-disabled", "") != "true"
	state := domain.LinkState{Kind: kind, Enabled: enabled}
	if enabled {
		state.URL = link.AttrOr("href", "")
	}
	return state
}

func (p *DOMPage) HTML() (string, error) {
	return p.doc.HTML()
}
