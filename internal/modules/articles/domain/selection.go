package domain

// Card is the expandable unit of the list. Implementations must be comparable
// values (typically a pointer or a struct wrapping one): the selection compares
// them with ==.
type Card interface {
	Expanded() bool
	SetExpanded(expanded bool)
}

// Menu is a card's download menu. RefreshLinks re-resolves its links from the
// owning card's current identifiers.
type Menu interface {
	IsOpen() bool
	SetOpen(open bool)
	RefreshLinks()
}

// Zone classifies a click inside the list container.
type Zone int

const (
	ZoneOther Zone = iota
	ZoneTitle
	ZoneDownloadButton
	ZoneMenuInterior
)

func (z Zone) String() string {
	switch z {
	case ZoneTitle:
		return "title"
	case ZoneDownloadButton:
		return "download-button"
	case ZoneMenuInterior:
		return "menu-interior"
	default:
		return "other"
	}
}

// Hit is a classified list click. Card and Menu are nil when the target has
// no such ancestor.
type Hit struct {
	Zone Zone
	Card Card
	Menu Menu
}

// Effect tells the event source what to do with the native event.
type Effect struct {
	PreventDefault  bool
	StopPropagation bool
}

var listClickHandlers = map[Zone]func(*Selection, Hit) Effect{
	ZoneTitle:          (*Selection).clickTitle,
	ZoneDownloadButton: (*Selection).clickDownloadButton,
	ZoneMenuInterior:   (*Selection).clickMenuInterior,
}

// Selection keeps at most one expanded card and at most one open menu. The two
// are tracked independently. It is not safe for concurrent use.
type Selection struct {
	expanded Card
	open     Menu
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) ExpandedCard() Card { return s.expanded }
func (s *Selection) OpenMenu() Menu     { return s.open }

// SetExpanded collapses or expands card. Expanding collapses the previously
// expanded card first.
func (s *Selection) SetExpanded(card Card, expanded bool) {
	if card == nil {
		return
	}
	if !expanded {
		card.SetExpanded(false)
		if s.expanded == card {
			s.expanded = nil
		}
		return
	}
	if s.expanded != nil && s.expanded != card {
		s.expanded.SetExpanded(false)
	}
	card.SetExpanded(true)
	s.expanded = card
}

// SetMenuOpen opens or closes menu. Opening closes the previously open menu
// first.
func (s *Selection) SetMenuOpen(menu Menu, open bool) {
	if menu == nil {
		return
	}
	if !open {
		menu.SetOpen(false)
		if s.open == menu {
			s.open = nil
		}
		return
	}
	if s.open != nil && s.open != menu {
		s.open.SetOpen(false)
	}
	menu.SetOpen(true)
	s.open = menu
}

func (s *Selection) CloseOpenMenu() {
	if s.open == nil {
		return
	}
	s.open.SetOpen(false)
	s.open = nil
}

// HandleListClick applies the transition for a click delegated to the list
// container.
func (s *Selection) HandleListClick(hit Hit) Effect {
	handler, ok := listClickHandlers[hit.Zone]
	if !ok {
		return Effect{}
	}
	return handler(s, hit)
}

// HandleDocumentClick closes the open menu unless the click landed inside it.
// targetMenu is the menu enclosing the click target, or nil.
func (s *Selection) HandleDocumentClick(targetMenu Menu) {
	if s.open == nil {
		return
	}
	if targetMenu != nil && targetMenu == s.open {
		return
	}
	s.CloseOpenMenu()
}

func (s *Selection) HandleKeyDown(key string) {
	if key == "Escape" {
		s.CloseOpenMenu()
	}
}

func (s *Selection) clickTitle(hit Hit) Effect {
	effect := Effect{PreventDefault: true}
	if hit.Card == nil {
		return effect
	}
	s.SetExpanded(hit.Card, !hit.Card.Expanded())
	return effect
}

func (s *Selection) clickDownloadButton(hit Hit) Effect {
	effect := Effect{PreventDefault: true, StopPropagation: true}
	if hit.Card != nil {
		s.SetExpanded(hit.Card, true)
	}
	if hit.Menu == nil {
		return effect
	}
	if hit.Menu.IsOpen() {
		s.SetMenuOpen(hit.Menu, false)
		return effect
	}
	hit.Menu.RefreshLinks()
	s.SetMenuOpen(hit.Menu, true)
	return effect
}

func (s *Selection) clickMenuInterior(Hit) Effect {
	return Effect{StopPropagation: true}
}
