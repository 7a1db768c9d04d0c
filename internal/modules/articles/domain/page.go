package domain

import (
	"fmt"
	"strings"
)

// Part names an element of a rendered page that an input can target.
type Part string

const (
	PartTitle    Part = "title"
	PartDownload Part = "download"
	PartMenu     Part = "menu"
	PartMenuItem Part = "menu-item"
	PartBody     Part = "body"
	PartOutside  Part = "outside"
)

func ParsePart(raw string) (Part, error) {
	part := Part(strings.ToLower(strings.TrimSpace(raw)))
	switch part {
	case PartTitle, PartDownload, PartMenu, PartMenuItem, PartBody, PartOutside:
		return part, nil
	default:
		return "", fmt.Errorf("unsupported target part %q", raw)
	}
}

// Locator addresses an element by card position. Card is ignored for
// PartOutside; Kind is only used by PartMenuItem.
type Locator struct {
	Card int
	Part Part
	Kind LinkKind
}

type InputKind int

const (
	InputClick InputKind = iota
	InputKeyDown
)

type Input struct {
	Kind   InputKind
	Target Locator
	Key    string
}

func Click(target Locator) Input { return Input{Kind: InputClick, Target: target} }
func KeyDown(key string) Input   { return Input{Kind: InputKeyDown, Key: key} }

type LinkState struct {
	Kind    LinkKind
	URL     string
	Enabled bool
}

type CardState struct {
	Index       int
	ID          string
	Title       string
	Brief       string
	Abstract    string
	Anchor      string
	Placeholder bool
	Expanded    bool
	HasMenu     bool
	MenuOpen    bool
	// ButtonExpanded mirrors aria-expanded on the download button.
	ButtonExpanded bool
	Links          []LinkState
	Comment        *LinkState
}

// PageState is a read-only view of the rendered list. ExpandedIndex and
// OpenMenuIndex are -1 when nothing is selected.
type PageState struct {
	Cards         []CardState
	ExpandedIndex int
	OpenMenuIndex int
}

// DispatchResult reports what the event source observed after an input.
type DispatchResult struct {
	DefaultPrevented   bool
	PropagationStopped bool
	State              PageState
}
