package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the reading TUI. Bindings are
// screen-specific: on the question screen printable keys go to the
// question input, so only control keys act there.
type KeyMap struct {
	// Question screen.
	Draw       key.Binding
	ToggleSize key.Binding
	History    key.Binding

	// Result and history screens.
	NewReading  key.Binding
	ShowHistory key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Draw: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "draw"),
	),
	ToggleSize: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "1/3 cards"),
	),
	History: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "history"),
	),
	NewReading: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new reading"),
	),
	ShowHistory: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "history"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// screenHelp adapts a list of bindings to help.KeyMap
type screenHelp []key.Binding

func (s screenHelp) ShortHelp() []key.Binding  { return s }
func (s screenHelp) FullHelp() [][]key.Binding { return [][]key.Binding{s} }
