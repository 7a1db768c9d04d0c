package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"articlecards/internal/ui/components"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	candidates := []string{"A1  Graph sketches", "B2  Rooted trees", "C3  Tree automata"}
	cases := map[string]int{
		"b2":    1,
		"TREE":  1,
		"auto":  2,
		"":      -1,
		"zebra": -1,
	}
	for query, want := range cases {
		if got := components.Match(candidates, query); got != want {
			t.Fatalf("Match(%q) = %d, want %d", query, got, want)
		}
	}
}

func TestPaletteSubmitAndCancel(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	p.Open([]string{"A1"})
	if !p.Visible() {
		t.Fatalf("palette should be visible after Open")
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a1")})
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("enter should hide the palette")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok || msg.Input != "a1" {
		t.Fatalf("unexpected submit message %#v", msg)
	}

	p.Open(nil)
	p, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("esc should hide the palette")
	}
	if _, ok := cmd().(components.PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}
}
