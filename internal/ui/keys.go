package ui

import "github.com/charmbracelet/bubbles/key"

type panelKeys struct {
	Quit   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Down   key.Binding
	Up     key.Binding
	Open   key.Binding
	Back   key.Binding
	Switch key.Binding
}

type confirmKeys struct {
	Cancel  key.Binding
	Toggle  key.Binding
	Yes     key.Binding
	No      key.Binding
	Confirm key.Binding
}

type formKeys struct {
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
	Erase  key.Binding
	Clear  key.Binding
	Submit key.Binding
}

type keyMap struct {
	Panel   panelKeys
	Confirm confirmKeys
	Form    formKeys
	// ForceQuit still works while a request is in flight.
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Panel: panelKeys{
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
			Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add")),
			Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit")),
			Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Delete")),
			Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "Navigate")),
			Up:     key.NewBinding(key.WithKeys("k", "up")),
			Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open")),
			Back:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("Bksp", "Back")),
			Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Panel")),
		},
		Confirm: confirmKeys{
			Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
			Toggle:  key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("Tab", "Switch")),
			Yes:     key.NewBinding(key.WithKeys("y")),
			No:      key.NewBinding(key.WithKeys("n")),
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Confirm")),
		},
		Form: formKeys{
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
			Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab")),
			Erase:  key.NewBinding(key.WithKeys("backspace")),
			Clear:  key.NewBinding(key.WithKeys("ctrl+u")),
			Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Save")),
		},
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap for the main screen.
func (k panelKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Add, k.Edit, k.Delete, k.Open, k.Back, k.Switch, k.Quit}
}

func (k panelKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Confirm, k.Cancel}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
