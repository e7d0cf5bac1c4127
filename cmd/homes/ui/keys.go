package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for both pages.
type KeyMap struct {
	// List page
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Verified    key.Binding
	NearYou     key.Binding
	New         key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Open        key.Binding
	Refresh     key.Binding

	// Detail page
	Back    key.Binding
	Contact key.Binding
	Copy    key.Binding

	Help key.Binding
	Quit key.Binding

	detail bool
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Verified:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "verified")),
		NearYou:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "near you")),
		New:         key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "new")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		Back:    key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		Contact: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy address")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ForDetail returns the map as shown on the detail page.
func (k KeyMap) ForDetail(detail bool) KeyMap {
	k.detail = detail
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.detail {
		return []key.Binding{k.Back, k.Contact, k.Copy, k.Quit}
	}
	return []key.Binding{k.NextTab, k.Search, k.Open, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	if k.detail {
		return [][]key.Binding{
			{k.Up, k.Down},
			{k.Back, k.Contact, k.Copy},
			{k.Help, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.NextTab, k.PrevTab, k.Verified, k.NearYou, k.New},
		{k.Search, k.ClearSearch, k.Refresh},
		{k.Help, k.Quit},
	}
}
