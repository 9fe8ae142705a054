package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/petsim/internal/game/command"
	"github.com/cory-johannsen/petsim/internal/game/session"
)

// Result summarizes one replayed scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string
	// SessionID tags the log entries this run produced.
	SessionID string
	// Turns is the number of turns the run consumed.
	Turns int
	// End is the session end reason, or empty if the steps ran out with
	// the pet alive.
	End session.EndReason
	// Skipped counts steps that never ran because the session ended.
	Skipped int
	// Lines is the player-facing transcript.
	Lines []string
}

// Run replays a validated scenario through a fresh session and returns
// the transcript. Rejected in-game actions are ordinary outcomes, not
// errors.
//
// Precondition: sc passed Validate; logger is non-nil.
func Run(sc *Scenario, logger *zap.Logger) Result {
	p := sc.BuildPet()
	sess := session.New(p, logger)
	reg := command.DefaultRegistry()

	lines := []string{
		fmt.Sprintf("%s %s %s has been created!", p.Species().Emoji(), p.Species().DisplayName(), p.Name()),
	}

	skipped := 0
	for _, step := range sc.Steps {
		if sess.Ended() {
			skipped++
			continue
		}
		lines = append(lines, "> "+step)
		res := command.Execute(reg, sess, step)
		lines = append(lines, res.Lines...)
	}
	if skipped > 0 {
		logger.Info("scenario steps skipped",
			zap.String("scenario", sc.Name),
			zap.String("session_id", sess.ID()),
			zap.Int("skipped", skipped),
		)
	}
	if sess.End() == session.EndDeath {
		lines = append(lines, fmt.Sprintf("Game Over! %s has died.", p.Name()))
	}

	return Result{
		Scenario:  sc.Name,
		SessionID: sess.ID(),
		Turns:     sess.Turn(),
		End:       sess.End(),
		Skipped:   skipped,
		Lines:     lines,
	}
}
