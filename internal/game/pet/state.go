package pet

// State identifies the pet's current behavior state. The state decides
// which actions are legal and how each action and turn advance mutates the
// attributes. The zero value (StateUnknown) is intentionally invalid; New
// always assigns a real state.
type State int

const (
	StateUnknown State = iota // zero value; intentionally invalid
	StateHappy
	StateNormal
	StateHungry
	StateSleeping
	StateDead
)

// String returns the lowercase state name used in logs and journals.
func (s State) String() string {
	switch s {
	case StateHappy:
		return "happy"
	case StateNormal:
		return "normal"
	case StateHungry:
		return "hungry"
	case StateSleeping:
		return "sleeping"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DisplayName returns the capitalized state label for player-facing text.
func (s State) DisplayName() string {
	switch s {
	case StateHappy:
		return "Happy"
	case StateNormal:
		return "Normal"
	case StateHungry:
		return "Hungry"
	case StateSleeping:
		return "Sleeping"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Emoji returns the glyph drivers show next to the state label.
func (s State) Emoji() string {
	switch s {
	case StateHappy:
		return "😊"
	case StateNormal:
		return "😐"
	case StateHungry:
		return "😠"
	case StateSleeping:
		return "😴"
	case StateDead:
		return "💀"
	default:
		return "❓"
	}
}

// Terminal reports whether s admits no further attribute or state changes.
func (s State) Terminal() bool { return s == StateDead }
