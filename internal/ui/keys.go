package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding

	// List navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// List actions
	Edit         key.Binding
	New          key.Binding
	Delete       key.Binding
	PriorityUp   key.Binding
	PriorityDown key.Binding
	Sort         key.Binding
	CopyID       key.Binding

	// Editor
	Save       key.Binding
	Close      key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Fullscreen key.Binding
	SwapPanes  key.Binding
	CycleNext  key.Binding
	CyclePrev  key.Binding

	// Log overlay
	LogLevel   key.Binding
	LogRefresh key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Show log"),
		),

		// List navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// List actions
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "Edit task"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Delete task"),
		),
		PriorityUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Raise priority"),
		),
		PriorityDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Lower priority"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sort by priority"),
		),
		CopyID: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy task id"),
		),

		// Editor
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save task"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close editor"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("alt+f"),
			key.WithHelp("alt+f", "Toggle full screen"),
		),
		SwapPanes: key.NewBinding(
			key.WithKeys("alt+w"),
			key.WithHelp("alt+w", "Widen list/editor"),
		),
		CycleNext: key.NewBinding(
			key.WithKeys("right", " ", "+", "="),
			key.WithHelp("right/+", "Next status / raise priority"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("left/-", "Previous status / lower priority"),
		),

		// Log overlay
		LogLevel: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle minimum level"),
		),
		LogRefresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload log"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Top, k.Bottom},
		// List
		{k.Edit, k.New, k.Delete, k.PriorityUp, k.PriorityDown, k.Sort, k.CopyID},
		// Editor
		{k.Save, k.Close, k.NextField, k.PrevField, k.CycleNext, k.CyclePrev, k.Fullscreen, k.SwapPanes},
		// Log
		{k.Logs, k.LogLevel, k.LogRefresh},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
