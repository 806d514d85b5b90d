package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by every screen. Screen-specific action
// keys (approve, pay, check out and so on) stay local to their models.
type keyMap struct {
	up   key.Binding
	down key.Binding
	copy key.Binding
	quit key.Binding
}

var keys = keyMap{
	up:   key.NewBinding(key.WithKeys("up", "k")),
	down: key.NewBinding(key.WithKeys("down", "j")),
	copy: key.NewBinding(key.WithKeys("c")),
	quit: key.NewBinding(key.WithKeys("ctrl+c")),
}
