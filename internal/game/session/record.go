package session

import (
	"github.com/cory-johannsen/petsim/internal/game/pet"
)

// EndReason records why a session stopped accepting turns.
type EndReason string

const (
	// EndDeath means the pet reached its terminal state.
	EndDeath EndReason = "death"
	// EndQuit means the player left a living pet.
	EndQuit EndReason = "quit"
)

// TurnRecord is one journaled turn: the command that drove it, every
// outcome it produced (the action, if any, then the turn advance), and
// the pet snapshot after all effects landed.
type TurnRecord struct {
	// Turn numbers from 1 without gaps.
	Turn int
	// Command is the canonical command line that drove the turn.
	Command string
	// Outcomes in order of effect.
	Outcomes []pet.Outcome
	// Attrs is the stored attribute snapshot after the turn.
	Attrs pet.Attributes
	// MaxHealth is the effective cap including gear.
	MaxHealth int
	// State after the turn.
	State pet.State
}

// Messages returns the non-empty flavor lines from the turn's outcomes,
// in order.
func (r TurnRecord) Messages() []string {
	var lines []string
	for _, out := range r.Outcomes {
		if out.Message != "" {
			lines = append(lines, out.Message)
		}
	}
	return lines
}
