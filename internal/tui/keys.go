package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ResetZoom key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ZoomIn: key.NewBinding(
			key.WithKeys("up", "+", "="),
			key.WithHelp("↑/+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓/-", "zoom out"),
		),
		ResetZoom: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyMapFor disables the zoom bindings when zoom is off.
func keyMapFor(enableZoom, canRefresh bool) KeyMap {
	km := DefaultKeyMap()
	km.ZoomIn.SetEnabled(enableZoom)
	km.ZoomOut.SetEnabled(enableZoom)
	km.ResetZoom.SetEnabled(enableZoom)
	km.Refresh.SetEnabled(canRefresh)
	return km
}

// FooterBindings returns the bindings shown in the footer.
func FooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.ZoomIn, km.ZoomOut, km.ResetZoom, km.Refresh, km.Quit}
}
