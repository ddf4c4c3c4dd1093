package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fixonz/malakainvadors/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last
// key event. Terminals report presses and auto-repeats but no releases.
const HoldWindow = 150 * time.Millisecond

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Up, k.Down, k.Confirm, k.Back},
		{k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// holdTracker synthesizes press and release transitions for movement
// keys from a stream of key events.
type holdTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{window: window, last: make(map[core.Action]time.Time)}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// key records a key event for a movement action at now. A new press
// releases the opposite direction.
func (h *holdTracker) key(a core.Action, now time.Time, frame *core.InputFrame) {
	if _, held := h.last[a]; !held {
		frame.Press(a)
	}
	h.last[a] = now

	if o := opposite(a); o != core.ActionNone {
		if _, held := h.last[o]; held {
			delete(h.last, o)
			frame.Release(o)
		}
	}
}

// expire releases actions with no key event inside the hold window.
func (h *holdTracker) expire(now time.Time, frame *core.InputFrame) {
	for a, at := range h.last {
		if now.Sub(at) >= h.window {
			delete(h.last, a)
			frame.Release(a)
		}
	}
}

// releaseAll drops every held action.
func (h *holdTracker) releaseAll(frame *core.InputFrame) {
	for a := range h.last {
		delete(h.last, a)
		frame.Release(a)
	}
}
