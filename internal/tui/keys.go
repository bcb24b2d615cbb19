package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextList  key.Binding
	PrevList  key.Binding
	AddList   key.Binding
	Remove    key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Compare   key.Binding
	CycleSort key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		NextList:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next list")),
		PrevList:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev list")),
		AddList:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add list")),
		Remove:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove list")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Compare:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "compare")),
		CycleSort: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "sort")),
	}
}

func (k keyMap) footer() []key.Binding {
	return []key.Binding{k.Compare, k.CycleSort, k.NextFocus, k.NextList, k.AddList, k.Remove, k.Quit}
}
