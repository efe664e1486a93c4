package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Sidebar key.Binding
	Export  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "sidebar")),
		Export:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snapshot")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
