package input

import "fmt"

// Action is a logical control the viewer reacts to
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	Up
	Down
	Exit
	Focus

	actionCount
)

// Actions lists every action in declaration order
var Actions = [actionCount]Action{Forward, Backward, Left, Right, Up, Down, Exit, Focus}

var actionNames = [actionCount]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
	Up:       "up",
	Down:     "down",
	Exit:     "exit",
	Focus:    "focus",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks up an action by its lower-case name
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Bindings maps each action to the name of a physical key or mouse button.
// Names are resolved by the platform layer (e.g. "W", "Space", "MouseLeft").
type Bindings map[Action]string

// DefaultBindings returns the stock WASD + Space/LeftShift layout
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  "W",
		Backward: "S",
		Left:     "A",
		Right:    "D",
		Up:       "Space",
		Down:     "LeftShift",
		Exit:     "Escape",
		Focus:    "MouseLeft",
	}
}

// Clone returns an independent copy of the bindings
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for a, name := range b {
		out[a] = name
	}
	return out
}
