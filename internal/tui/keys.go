package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard's key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Focus   key.Binding
	Edit    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Save    key.Binding
	Cancel  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Method  key.Binding
	Load    key.Binding
	Reset   key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle task")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Method:  key.NewBinding(key.WithKeys("left", "right", " "), key.WithHelp("←/→", "url/upload")),
		Load:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load file")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset image")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),
	}
}

// viewHelp lists the bindings active while viewing.
type viewHelp struct{ k KeyMap }

func (h viewHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Toggle, h.k.Edit, h.k.Focus, h.k.Help, h.k.Quit}
}

func (h viewHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Toggle},
		{h.k.Focus, h.k.Edit},
		{h.k.Help, h.k.Quit},
	}
}

// editHelp lists the bindings active while editing the profile.
type editHelp struct {
	k       KeyMap
	preview bool
}

func (h editHelp) ShortHelp() []key.Binding {
	b := []key.Binding{h.k.Next, h.k.Save, h.k.Cancel}
	if h.preview {
		b = append(b, h.k.Reset)
	}
	return b
}

func (h editHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Next, h.k.Prev},
		{h.k.Method, h.k.Load, h.k.Reset},
		{h.k.Save, h.k.Cancel},
	}
}
