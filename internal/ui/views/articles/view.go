package articles

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"articlecards/internal/modules/articles/dto"
	"articlecards/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is what the card list needs from the articles use-case.
type Port interface {
	Load(ctx context.Context) (dto.PageOutput, error)
	ClickTitle(ctx context.Context, card int) (dto.DispatchOutput, error)
	ClickDownload(ctx context.Context, card int) (dto.DispatchOutput, error)
	ClickMenuItem(ctx context.Context, card int, kind string) (dto.DispatchOutput, error)
	ClickOutside(ctx context.Context) (dto.DispatchOutput, error)
	Escape(ctx context.Context) (dto.DispatchOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PageLoadedMsg struct {
	Page dto.PageOutput
	Err  error
}

// DispatchedMsg carries the page after an input. Link is set when a menu
// item was activated.
type DispatchedMsg struct {
	Out  dto.DispatchOutput
	Link *dto.LinkOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	page     dto.PageOutput
	cursor   int
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	loading  bool
	width    int
	height   int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		renderer: newRenderer(0),
		loading:  true,
		page:     dto.PageOutput{ExpandedIndex: -1, OpenMenuIndex: -1},
	}
}

func newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.renderer = newRenderer(max(msg.Width-6, 20))
		m.refresh()

	case PageLoadedMsg:
		m.loading = false
		if msg.Err == nil {
			m.page = msg.Page
			m.cursor = 0
			m.refresh()
		}

	case DispatchedMsg:
		if msg.Err == nil {
			m.page = msg.Out.Page
			m.refresh()
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading articles…")
	}
	return m.viewport.View()
}

// ─── actions ─────────────────────────────────────────────────────────────────

func (m *Model) MoveCursor(delta int) {
	if len(m.page.Cards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.page.Cards)) % len(m.page.Cards)
	m.refresh()
}

func (m Model) Cursor() int { return m.cursor }

// SetCursor focuses card i; out of range indexes are ignored.
func (m *Model) SetCursor(i int) {
	if i < 0 || i >= len(m.page.Cards) {
		return
	}
	m.cursor = i
	m.refresh()
}

// Candidates lists the cards as "id  title" lines for the jump palette.
func (m Model) Candidates() []string {
	out := make([]string, 0, len(m.page.Cards))
	for _, card := range m.page.Cards {
		out = append(out, card.ID+"  "+card.Title)
	}
	return out
}

func (m Model) Page() dto.PageOutput { return m.page }

func (m Model) ToggleTitle() tea.Cmd {
	card := m.cursor
	return m.dispatch(func(ctx context.Context) (dto.DispatchOutput, error) {
		return m.port.ClickTitle(ctx, card)
	}, "")
}

func (m Model) ToggleDownload() tea.Cmd {
	card := m.cursor
	return m.dispatch(func(ctx context.Context) (dto.DispatchOutput, error) {
		return m.port.ClickDownload(ctx, card)
	}, "")
}

// ActivateLink clicks the menu item of kind on the focused card.
func (m Model) ActivateLink(kind string) tea.Cmd {
	card := m.cursor
	return m.dispatch(func(ctx context.Context) (dto.DispatchOutput, error) {
		return m.port.ClickMenuItem(ctx, card, kind)
	}, kind)
}

func (m Model) ClickOutside() tea.Cmd {
	return m.dispatch(m.port.ClickOutside, "")
}

func (m Model) Escape() tea.Cmd {
	return m.dispatch(m.port.Escape, "")
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) dispatch(fn func(context.Context) (dto.DispatchOutput, error), kind string) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(context.Background())
		msg := DispatchedMsg{Out: out, Err: err}
		if err == nil && kind != "" {
			if link, ok := findLink(out.Page, m.cursor, kind); ok {
				msg.Link = &link
			}
		}
		return msg
	}
}

func findLink(page dto.PageOutput, card int, kind string) (dto.LinkOutput, bool) {
	if card < 0 || card >= len(page.Cards) {
		return dto.LinkOutput{}, false
	}
	for _, link := range page.Cards[card].Links {
		if link.Kind == kind {
			return link, true
		}
	}
	return dto.LinkOutput{}, false
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		page, err := m.port.Load(context.Background())
		return PageLoadedMsg{Page: page, Err: err}
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderCards())
}

func (m Model) renderCards() string {
	if len(m.page.Cards) == 0 {
		return theme.Muted.Render("No cards rendered.")
	}
	width := max(m.width-2, 20)
	blocks := make([]string, 0, len(m.page.Cards))
	for i, card := range m.page.Cards {
		blocks = append(blocks, m.cardStyle(i, card).Width(width).Render(m.renderCard(card)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) cardStyle(i int, card dto.CardOutput) lipgloss.Style {
	switch {
	case card.Placeholder:
		return theme.CardFailed
	case i == m.cursor:
		return theme.CardFocused
	case card.Expanded:
		return theme.CardExpanded
	default:
		return theme.Card
	}
}

func (m Model) renderCard(card dto.CardOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Ident.Render(card.ID) + "  " + theme.Title.Render(card.Title) + "\n")
	if card.Brief != "" {
		sb.WriteString(theme.Muted.Render(wordwrap.String(card.Brief, m.textWidth())) + "\n")
	}
	if !card.Expanded {
		return strings.TrimRight(sb.String(), "\n")
	}

	if card.Abstract != "" {
		sb.WriteString(m.renderAbstract(card.Abstract))
	}
	if card.HasMenu {
		label := "▸ Download"
		if card.MenuOpen {
			label = "▾ Download"
		}
		sb.WriteString("\n" + theme.Hot.Render(label))
		if card.MenuOpen {
			for i, link := range card.Links {
				sb.WriteString(fmt.Sprintf("\n  %d %s", i+1, renderLink(link)))
			}
		}
	}
	if card.Comment != nil {
		sb.WriteString("\n" + theme.Muted.Render("comment ") + renderLink(*card.Comment))
	}
	return sb.String()
}

func (m Model) textWidth() int {
	return max(m.width-6, 20)
}

func (m Model) renderAbstract(abstract string) string {
	if m.renderer == nil {
		return abstract + "\n"
	}
	out, err := m.renderer.Render(abstract)
	if err != nil {
		return abstract + "\n"
	}
	return out
}

func renderLink(link dto.LinkOutput) string {
	label := strings.ToUpper(link.Kind)
	if !link.Enabled {
		return theme.Dimmed.Render(label + "  unavailable")
	}
	return label + "  " + theme.Link.Render(link.URL)
}
