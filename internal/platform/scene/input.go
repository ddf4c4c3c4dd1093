package scene

import "github.com/fixonz/malakainvadors/internal/core"

// KeyState reports device state for an action: whether any bound key is
// down, and whether one went down this frame.
type KeyState func(a core.Action) (down, justPressed bool)

// InputMapper builds input frames from level-triggered device state.
// Movement becomes press/release transitions, fire repeats while held,
// and everything else fires once per key press.
type InputMapper struct {
	held map[core.Action]bool
}

// NewInputMapper returns a mapper with nothing held.
func NewInputMapper() *InputMapper {
	return &InputMapper{held: make(map[core.Action]bool)}
}

var (
	movement = []core.Action{core.ActionLeft, core.ActionRight}
	edges    = []core.Action{core.ActionUp, core.ActionDown, core.ActionConfirm, core.ActionBack, core.ActionPause, core.ActionQuit}
)

// Frame samples state and returns this frame's input.
func (m *InputMapper) Frame(state KeyState) core.InputFrame {
	in := core.NewInputFrame()

	for _, a := range movement {
		down, _ := state(a)
		switch {
		case down && !m.held[a]:
			in.Press(a)
		case !down && m.held[a]:
			in.Release(a)
		}
		m.held[a] = down
	}

	if down, _ := state(core.ActionFire); down {
		in.Set(core.ActionFire)
	}
	for _, a := range edges {
		if _, just := state(a); just {
			in.Set(a)
		}
	}
	return in
}
