package out

import (
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"articlecards/internal/modules/articles/domain"
	"articlecards/internal/platform/dom"
	apperrors "articlecards/internal/platform/errors"
)

type domCard struct{ node *xhtml.Node }

func (c domCard) Expanded() bool {
	return dom.Wrap(c.node).HasClass(classExpanded)
}

func (c domCard) SetExpanded(expanded bool) {
	if expanded {
		dom.Wrap(c.node).AddClass(classExpanded)
		return
	}
	dom.Wrap(c.node).RemoveClass(classExpanded)
}

type domMenu struct{ node *xhtml.Node }

func (m domMenu) IsOpen() bool {
	return dom.Wrap(m.node).HasClass(classOpen)
}

func (m domMenu) SetOpen(open bool) {
	sel := dom.Wrap(m.node)
	if open {
		sel.AddClass(classOpen)
	} else {
		sel.RemoveClass(classOpen)
	}
	if btn := sel.Find(selButton).First(); btn.Length() > 0 {
		btn.SetAttr("aria-expanded", strconv.FormatBool(open))
	}
}

func (m domMenu) RefreshLinks() {
	refreshMenuLinks(dom.Wrap(m.node))
}

func (p *DOMPage) bind() {
	root := p.doc.RootNode()
	p.doc.AddEventListener(p.list.Get(0), dom.EventClick, p.onListClick)
	p.doc.AddEventListener(root, dom.EventClick, p.onDocumentClick)
	p.doc.AddEventListener(root, dom.EventKeyDown, p.onKeyDown)
}

func (p *DOMPage) onListClick(ev *dom.Event) {
	effect := p.selection.HandleListClick(p.classify(ev.Target))
	if effect.PreventDefault {
		ev.PreventDefault()
	}
	if effect.StopPropagation {
		ev.StopPropagation()
	}
}

func (p *DOMPage) onDocumentClick(ev *dom.Event) {
	if p.selection.OpenMenu() == nil {
		return
	}
	p.selection.HandleDocumentClick(menuOf(dom.Wrap(ev.Target)))
}

func (p *DOMPage) onKeyDown(ev *dom.Event) {
	p.selection.HandleKeyDown(ev.Key)
}

// classify finds the deepest interaction zone around target, checking the
// title first, then the download button, then the menu.
func (p *DOMPage) classify(target *xhtml.Node) domain.Hit {
	sel := dom.Wrap(target)
	if title := p.inList(sel.Closest(selTitle)); title != nil {
		return domain.Hit{Zone: domain.ZoneTitle, Card: cardOf(title)}
	}
	if btn := p.inList(sel.Closest(selButton)); btn != nil {
		return domain.Hit{Zone: domain.ZoneDownloadButton, Card: cardOf(btn), Menu: menuOf(btn)}
	}
	if menu := p.inList(sel.Closest(selMenu)); menu != nil {
		return domain.Hit{Zone: domain.ZoneMenuInterior, Menu: menuOf(menu)}
	}
	return domain.Hit{Zone: domain.ZoneOther}
}

func (p *DOMPage) inList(sel *goquery.Selection) *goquery.Selection {
	if sel.Length() == 0 || !p.list.Contains(sel.Get(0)) {
		return nil
	}
	return sel
}

// cardOf and menuOf return untyped nil when there is no match, never a
// wrapper around a nil node.
func cardOf(sel *goquery.Selection) domain.Card {
	card := sel.Closest(selCard)
	if card.Length() == 0 {
		return nil
	}
	return domCard{node: card.Get(0)}
}

func menuOf(sel *goquery.Selection) domain.Menu {
	menu := sel.Closest(selMenu)
	if menu.Length() == 0 {
		return nil
	}
	return domMenu{node: menu.Get(0)}
}

func (p *DOMPage) Dispatch(input domain.Input) (domain.DispatchResult, error) {
	var ev *dom.Event
	switch input.Kind {
	case domain.InputClick:
		target, err := p.locate(input.Target)
		if err != nil {
			return domain.DispatchResult{State: p.Snapshot()}, err
		}
		ev = dom.NewClick(target)
	case domain.InputKeyDown:
		ev = dom.NewKeyDown(p.focusTarget(), input.Key)
	default:
		return domain.DispatchResult{State: p.Snapshot()}, fmt.Errorf("%w: unknown input kind %d", apperrors.ErrInvalidInput, input.Kind)
	}
	if err := p.doc.Dispatch(ev); err != nil {
		p.logger.Error("event handler failed", "event", ev.Type, "error", err)
	}
	return domain.DispatchResult{
		DefaultPrevented:   ev.DefaultPrevented(),
		PropagationStopped: ev.PropagationStopped(),
		State:              p.Snapshot(),
	}, nil
}

// focusTarget is where keyboard events land: the body, as with nothing focused.
func (p *DOMPage) focusTarget() *xhtml.Node {
	if body := p.doc.Find("body").First(); body.Length() > 0 {
		return body.Get(0)
	}
	return p.doc.RootNode()
}

func (p *DOMPage) locate(loc domain.Locator) (*xhtml.Node, error) {
	if loc.Part == domain.PartOutside {
		return p.focusTarget(), nil
	}
	cards := p.cards()
	if loc.Card < 0 || loc.Card >= cards.Length() {
		return nil, fmt.Errorf("%w: card %d of %d", apperrors.ErrNotFound, loc.Card, cards.Length())
	}
	card := cards.Eq(loc.Card)

	var sel *goquery.Selection
	switch loc.Part {
	case domain.PartTitle:
		sel = card.Find(selTitle)
	case domain.PartDownload:
		sel = card.Find(selButton)
	case domain.PartMenu:
		sel = card.Find(selMenu)
	case domain.PartMenuItem:
		sel = card.Find(selMenuItem)
		if loc.Kind != "" {
			sel = sel.FilterFunction(func(_ int, item *goquery.Selection) bool {
				return item.AttrOr("data-kind", "") == string(loc.Kind)
			})
		}
	case domain.PartBody:
		sel = card
	default:
		return nil, fmt.Errorf("%w: unsupported target part %q", apperrors.ErrInvalidInput, loc.Part)
	}
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: card %d has no %s", apperrors.ErrNotFound, loc.Card, loc.Part)
	}
	return sel.Get(0), nil
}
