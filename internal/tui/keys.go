package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	Commit    key.Binding
	Blur      key.Binding
	QuickPick key.Binding
	HotPick   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←/h", "prev ball"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "next ball"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "pick number"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc", "tab", "shift+tab", "left", "right"),
		key.WithHelp("esc", "close"),
	),
	QuickPick: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "quick pick"),
	),
	HotPick: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "hot pick"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// idleHelp and editingHelp satisfy help.KeyMap for each selector state.
type idleHelp struct{}

func (idleHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.Left, keys.Right, keys.Open, keys.QuickPick, keys.HotPick, keys.Quit}
}

func (h idleHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type editingHelp struct{}

func (editingHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "browse")),
		keys.Commit,
		keys.Blur,
	}
}

func (h editingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
