package dto

type ArticleOutput struct {
	ID       string
	Title    string
	Brief    string
	Abstract string
	PDF      string
	DOI      string
	ARK      string
	Comment  string
}

type LinkOutput struct {
	Kind    string
	URL     string
	Enabled bool
}

type CardOutput struct {
	Index          int
	ID             string
	Title          string
	Brief          string
	Abstract       string
	Anchor         string
	Placeholder    bool
	Expanded       bool
	HasMenu        bool
	MenuOpen       bool
	ButtonExpanded bool
	Links          []LinkOutput
	Comment        *LinkOutput
}

type PageOutput struct {
	Cards         []CardOutput
	ExpandedIndex int
	OpenMenuIndex int
}

type ClickInput struct {
	Card int
	Part string
	Kind string
}

type KeyInput struct {
	Key string
}

type DispatchOutput struct {
	DefaultPrevented   bool
	PropagationStopped bool
	Page               PageOutput
}

type ResolveLinkInput struct {
	Kind       string
	Identifier string
}
