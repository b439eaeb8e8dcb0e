package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	filter   key.Binding
	reload   key.Binding
	flush    key.Binding
	delete   key.Binding
	copy     key.Binding
	cycle    key.Binding
	encrypt  key.Binding
	keyNext  key.Binding
	keyPrev  key.Binding
	generate key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	filter:   key.NewBinding(key.WithKeys("/")),
	reload:   key.NewBinding(key.WithKeys("r")),
	flush:    key.NewBinding(key.WithKeys("s")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	cycle:    key.NewBinding(key.WithKeys("t")),
	encrypt:  key.NewBinding(key.WithKeys("x")),
	keyNext:  key.NewBinding(key.WithKeys("]")),
	keyPrev:  key.NewBinding(key.WithKeys("[")),
	generate: key.NewBinding(key.WithKeys("g")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
