package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is an editor command derived from input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPaint
	ActionErase
	ActionRun
	ActionCancel
	ActionClearAll
	ActionClearMarks
	ActionPattern
	ActionPolicy
	ActionTheme
	ActionSave
	ActionHelp
	ActionQuit
)

// EditorKeyMap defines the key bindings for the grid editor.
type EditorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Paint      key.Binding
	Erase      key.Binding
	Run        key.Binding
	Cancel     key.Binding
	ClearAll   key.Binding
	ClearMarks key.Binding
	Pattern    key.Binding
	Policy     key.Binding
	Theme      key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paint, k.Erase, k.Run, k.Cancel, k.ClearAll, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Erase, k.ClearAll, k.ClearMarks},
		{k.Run, k.Cancel, k.Pattern, k.Policy},
		{k.Theme, k.Save, k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		Paint: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("enter/LMB", "place"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete", "d"),
			key.WithHelp("del/RMB", "erase"),
		),
		Run: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		ClearMarks: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear marks"),
		),
		Pattern: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next pattern"),
		),
		Policy: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "frontier policy"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an editor action.
func (k EditorKeyMap) MapKey(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Cancel):
		return ActionCancel
	case key.Matches(msg, k.Up):
		return ActionUp
	case key.Matches(msg, k.Down):
		return ActionDown
	case key.Matches(msg, k.Left):
		return ActionLeft
	case key.Matches(msg, k.Right):
		return ActionRight
	case key.Matches(msg, k.Paint):
		return ActionPaint
	case key.Matches(msg, k.Erase):
		return ActionErase
	case key.Matches(msg, k.Run):
		return ActionRun
	case key.Matches(msg, k.ClearAll):
		return ActionClearAll
	case key.Matches(msg, k.ClearMarks):
		return ActionClearMarks
	case key.Matches(msg, k.Pattern):
		return ActionPattern
	case key.Matches(msg, k.Policy):
		return ActionPolicy
	case key.Matches(msg, k.Theme):
		return ActionTheme
	case key.Matches(msg, k.Save):
		return ActionSave
	case key.Matches(msg, k.Help):
		return ActionHelp
	}
	return ActionNone
}
