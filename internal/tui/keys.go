package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView key.Binding
	PrevView key.Binding
	Home     key.Binding
	End      key.Binding
	Send     key.Binding
	Clear    key.Binding
	Submit   key.Binding
	NextRow  key.Binding
	PrevRow  key.Binding
	Refresh  key.Binding
	Health   key.Binding
	SignOut  key.Binding
	Locale   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first view")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last view")),
		Send:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear thread")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextRow:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↑/↓", "field")),
		PrevRow:  key.NewBinding(key.WithKeys("up")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh users")),
		Health:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "health checks")),
		SignOut:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "sign out")),
		Locale:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "中文/EN")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
