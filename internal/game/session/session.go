// Package session runs the turn loop for one pet. A session applies at
// most one player action per turn, always advances the simulation once
// after it, journals every turn, and stops at death or quit. Drivers
// (terminal UI, scenario runner) share this engine.
package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/petsim/internal/game/gear"
	"github.com/cory-johannsen/petsim/internal/game/pet"
)

// Session owns the outermost gear handle, the turn counter, and the
// journal for one run of the simulation. Methods are not safe for
// concurrent use; drivers call them from a single loop.
type Session struct {
	id      string
	logger  *zap.Logger
	pet     gear.Equipped
	turn    int
	journal []TurnRecord
	end     EndReason
}

// New starts a session around p.
//
// Precondition: p and logger are non-nil.
// Postcondition: a pet that is already terminal yields a session that is
// ended before its first turn.
func New(p *pet.Pet, logger *zap.Logger) *Session {
	s := &Session{
		id:     uuid.New().String(),
		logger: logger,
		pet:    gear.NewEquipped(p),
	}
	s.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.String("pet", p.Name()),
		zap.String("species", string(p.Species())),
		zap.String("state", p.State().String()),
	)
	if p.IsTerminal() {
		s.end = EndDeath
		s.logger.Info("pet died", zap.String("session_id", s.id), zap.Int("turn", 0))
	}
	return s
}

// Feed feeds the pet and advances the turn.
func (s *Session) Feed() TurnRecord {
	return s.step("feed", func() []pet.Outcome {
		return []pet.Outcome{s.pet.Feed()}
	})
}

// Play plays with the pet and advances the turn.
func (s *Session) Play() TurnRecord {
	return s.step("play", func() []pet.Outcome {
		return []pet.Outcome{s.pet.Play()}
	})
}

// Sleep puts the pet to bed and advances the turn.
func (s *Session) Sleep() TurnRecord {
	return s.step("sleep", func() []pet.Outcome {
		return []pet.Outcome{s.pet.Sleep()}
	})
}

// Wait advances the turn with no action.
func (s *Session) Wait() TurnRecord {
	return s.step("wait", nil)
}

// EquipGear adds one gear instance, replaces the held handle, and
// advances the turn; equipping costs a turn like every other choice.
func (s *Session) EquipGear(k gear.Kind) TurnRecord {
	if s.Ended() {
		return TurnRecord{}
	}
	s.pet = s.pet.Equip(k)
	items := s.pet.Items()
	s.logger.Info("gear equipped",
		zap.String("session_id", s.id),
		zap.String("kind", string(k)),
		zap.String("instance_id", items[len(items)-1].InstanceID),
	)
	return s.step("equip "+string(k), nil)
}

// Quit ends the session without advancing the turn. Ending an already
// ended session changes nothing.
func (s *Session) Quit() {
	if s.Ended() {
		return
	}
	s.end = EndQuit
	s.logger.Info("session ended",
		zap.String("session_id", s.id),
		zap.String("reason", string(EndQuit)),
		zap.Int("turns", s.turn),
	)
}

// step runs one turn: the action (if any), then exactly one advance.
func (s *Session) step(command string, act func() []pet.Outcome) TurnRecord {
	if s.Ended() {
		return TurnRecord{}
	}
	s.turn++

	var outcomes []pet.Outcome
	if act != nil {
		outcomes = act()
	}
	outcomes = append(outcomes, s.pet.AdvanceTurn())

	rec := TurnRecord{
		Turn:      s.turn,
		Command:   command,
		Outcomes:  outcomes,
		Attrs:     s.pet.Attributes(),
		MaxHealth: s.pet.MaxHealth(),
		State:     s.pet.State(),
	}
	s.journal = append(s.journal, rec)

	for _, out := range outcomes {
		s.logOutcome(out)
	}
	s.logger.Debug("turn complete",
		zap.String("session_id", s.id),
		zap.Int("turn", rec.Turn),
		zap.String("command", rec.Command),
		zap.Int("health", rec.Attrs.Health),
		zap.Int("max_health", rec.MaxHealth),
		zap.Int("energy", rec.Attrs.Energy),
		zap.Int("hunger", rec.Attrs.Hunger),
		zap.Int("happiness", rec.Attrs.Happiness),
		zap.String("state", rec.State.String()),
	)

	if s.pet.IsTerminal() {
		s.end = EndDeath
		s.logger.Info("pet died", zap.String("session_id", s.id), zap.Int("turn", s.turn))
	}
	return rec
}

func (s *Session) logOutcome(out pet.Outcome) {
	s.logger.Info("action outcome",
		zap.String("session_id", s.id),
		zap.String("action", out.Action.String()),
		zap.Bool("applied", out.Applied),
		zap.String("reason", string(out.Reason)),
		zap.String("state_from", out.StateBefore.String()),
		zap.String("state_to", out.StateAfter.String()),
	)
	if out.StateChanged() {
		s.logger.Info("state changed",
			zap.String("session_id", s.id),
			zap.String("from", out.StateBefore.String()),
			zap.String("to", out.StateAfter.String()),
		)
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Pet returns the current outermost handle.
func (s *Session) Pet() gear.Equipped { return s.pet }

// Turn returns the number of completed turns.
func (s *Session) Turn() int { return s.turn }

// Ended reports whether the session stopped accepting turns.
func (s *Session) Ended() bool { return s.end != "" }

// End returns the end reason, or empty while the session is live.
func (s *Session) End() EndReason { return s.end }

// Journal returns a copy of the per-turn records in order.
func (s *Session) Journal() []TurnRecord {
	journal := make([]TurnRecord, len(s.journal))
	copy(journal, s.journal)
	return journal
}
