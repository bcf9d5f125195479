package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Timer
	Work      key.Binding
	ShortRest key.Binding
	LongRest  key.Binding
	Pause     key.Binding

	// Global
	Bell       key.Binding
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Work: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Work"),
		),
		ShortRest: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Short rest"),
		),
		LongRest: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Long rest"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "Pause/continue"),
		),

		Bell: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle bell"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Work, k.ShortRest, k.LongRest, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Work, k.ShortRest, k.LongRest, k.Pause},
		{k.Bell, k.CycleTheme, k.Help, k.Quit},
	}
}
