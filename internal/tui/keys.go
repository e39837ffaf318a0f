package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding

	// Set entry
	Digit     key.Binding
	Backspace key.Binding

	// Editing
	AddSet         key.Binding
	DeleteSet      key.Binding
	RemoveExercise key.Binding
	AddExercise    key.Binding
	Rename         key.Binding

	// Session
	Toggle    key.Binding
	Rest      key.Binding
	RestReset key.Binding
	Pause     key.Binding
	Notes     key.Binding

	// Actions
	Save    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Select  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "reps/kg"),
		),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9", "type"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "erase"),
		),
		AddSet: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add set"),
		),
		DeleteSet: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete set"),
		),
		RemoveExercise: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "remove exercise"),
		),
		AddExercise: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "add exercise"),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "name"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "done"),
		),
		Rest: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "rest"),
		),
		RestReset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "stop rest"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause clock"),
		),
		Notes: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "notes"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "no"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
	}
}

// ShortHelp returns the key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Digit, k.AddSet, k.AddExercise, k.Save, k.Quit, k.Help}
}

// FullHelp returns the key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.NextField, k.Digit, k.Backspace},
		{k.AddSet, k.DeleteSet, k.AddExercise, k.RemoveExercise, k.Rename},
		{k.Toggle, k.Rest, k.RestReset, k.Pause, k.Notes},
		{k.Save, k.Quit, k.Help},
	}
}
