package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"articlecards/internal/ui/components"
	"articlecards/internal/ui/theme"
	articlesview "articlecards/internal/ui/views/articles"
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Title    key.Binding
	Download key.Binding
	Link     key.Binding
	Outside  key.Binding
	Escape   key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous card")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next card")),
		Title:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle details")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download menu")),
		Link:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "pdf/doi/ark")),
		Outside:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "click outside")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump to card")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Title, k.Download, k.Escape, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Jump, k.Title},
		{k.Download, k.Link, k.Outside, k.Escape},
		{k.Help, k.Quit},
	}
}

var linkKeys = map[string]string{"1": "pdf", "2": "doi", "3": "ark"}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It maps keys to page inputs and
// delegates rendering of the cards to the articles view.
type Model struct {
	source   string
	cards    articlesview.Model
	keys     keyMap
	help     help.Model
	palette  components.Palette
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(source string, port articlesview.Port) Model {
	return Model{
		source:  source,
		cards:   articlesview.New(port),
		keys:    defaultKeys(),
		help:    help.New(),
		palette: components.NewPalette(),
		status:  "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return m.cards.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(msg.Width-4, 80))
		var cmd tea.Cmd
		m.cards, cmd = m.cards.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.contentHeight()})
		return m, cmd

	case articlesview.PageLoadedMsg:
		if msg.Err != nil {
			m.status = "load: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("%d cards", len(msg.Page.Cards))
		}

	case components.PaletteSubmitMsg:
		if i := components.Match(m.cards.Candidates(), msg.Input); i >= 0 {
			m.cards.SetCursor(i)
			m.status = fmt.Sprintf("card #%d", i+1)
		} else if msg.Input != "" {
			m.status = "no card matches " + msg.Input
		}
		return m, nil

	case components.PaletteCancelMsg:
		return m, nil

	case articlesview.DispatchedMsg:
		switch {
		case msg.Err != nil:
			m.status = msg.Err.Error()
		case msg.Link != nil && msg.Link.Enabled:
			m.status = "open " + msg.Link.URL
		case msg.Link != nil:
			m.status = msg.Link.Kind + " is unavailable"
		default:
			m.status = describe(msg)
		}

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help, m.keys.Escape) {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			cmd := m.palette.Open(m.cards.Candidates())
			return m, cmd
		case key.Matches(msg, m.keys.Up):
			m.cards.MoveCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.cards.MoveCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.Title):
			return m, m.cards.ToggleTitle()
		case key.Matches(msg, m.keys.Download):
			return m, m.cards.ToggleDownload()
		case key.Matches(msg, m.keys.Link):
			return m, m.cards.ActivateLink(linkKeys[msg.String()])
		case key.Matches(msg, m.keys.Outside):
			return m, m.cards.ClickOutside()
		case key.Matches(msg, m.keys.Escape):
			return m, m.cards.Escape()
		}
	}

	var cmd tea.Cmd
	m.cards, cmd = m.cards.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func describe(msg articlesview.DispatchedMsg) string {
	page := msg.Out.Page
	var parts []string
	if page.ExpandedIndex >= 0 {
		parts = append(parts, fmt.Sprintf("expanded #%d", page.ExpandedIndex+1))
	}
	if page.OpenMenuIndex >= 0 {
		parts = append(parts, fmt.Sprintf("menu #%d open", page.OpenMenuIndex+1))
	}
	if len(parts) == 0 {
		return "nothing selected"
	}
	return strings.Join(parts, ", ")
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	status := m.renderStatusBar()
	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, m.contentHeight(),
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.cards.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (m Model) contentHeight() int {
	return max(m.height-4, 1)
}

func (m Model) renderHeader() string {
	bar := theme.Hot.Render(" articles ") + theme.Muted.Render(" │ "+m.source)
	return theme.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + theme.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}
