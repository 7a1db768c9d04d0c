package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"articlecards/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a query.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

const maxHints = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Palette is a jump-to-card prompt backed by bubbles/textinput. Candidates
// are matched case-insensitively as substrings.
type Palette struct {
	input      textinput.Model
	candidates []string
	visible    bool
	width      int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "id or title…"
	ti.CharLimit = 128
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with the given candidates and returns the focus command.
func (p *Palette) Open(candidates []string) tea.Cmd {
	p.visible = true
	p.candidates = candidates
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Match returns the index of the first candidate containing query, or -1.
func Match(candidates []string, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return -1
	}
	for i, c := range candidates {
		if strings.Contains(strings.ToLower(c), query) {
			return i
		}
	}
	return -1
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	query := strings.ToLower(strings.TrimSpace(p.input.Value()))
	var matching []string
	for _, c := range p.candidates {
		if query == "" || strings.Contains(strings.ToLower(c), query) {
			matching = append(matching, c)
			if len(matching) == maxHints {
				break
			}
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Jump to card") + "\n")
	sb.WriteString("/ " + p.input.View() + "\n")
	if len(matching) > 0 {
		sb.WriteString("\n")
		for _, h := range matching {
			sb.WriteString(hintStyle.Render("  "+runewidth.Truncate(h, w-8, "…")) + "\n")
		}
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
