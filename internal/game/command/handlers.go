package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/petsim/internal/game/gear"
	"github.com/cory-johannsen/petsim/internal/game/pet"
	"github.com/cory-johannsen/petsim/internal/game/session"
)

// Result is the player-visible effect of one input line.
type Result struct {
	// Lines are the response lines in display order.
	Lines []string
	// TookTurn reports whether the line advanced the simulation.
	TookTurn bool
}

// Execute parses and dispatches one input line against the session.
// Unrecognized input still costs a turn; informational commands are
// free.
//
// Precondition: reg and sess must be non-nil.
// Postcondition: Returns the response lines; an ended session yields an
// empty Result and no turn.
func Execute(reg *Registry, sess *session.Session, line string) Result {
	if sess.Ended() {
		return Result{}
	}

	parsed := Parse(line)
	if parsed.Command == "" {
		return invalidChoice(sess)
	}
	cmd, ok := reg.Resolve(parsed.Command)
	if !ok {
		return invalidChoice(sess)
	}

	switch cmd.Handler {
	case HandlerFeed:
		return turnResult(sess, sess.Feed())
	case HandlerPlay:
		return turnResult(sess, sess.Play())
	case HandlerSleep:
		return turnResult(sess, sess.Sleep())
	case HandlerWait:
		return turnResult(sess, sess.Wait())
	case HandlerEquip:
		return HandleEquip(sess, parsed.Args)
	case HandlerStatus:
		return Result{Lines: StatusLines(sess)}
	case HandlerHelp:
		return Result{Lines: HelpLines(reg)}
	case HandlerQuit:
		return HandleQuit(sess)
	default:
		return invalidChoice(sess)
	}
}

// HandleEquip processes the "equip" command.
//
// Precondition: sess must not be nil.
// Postcondition: On a known kind the gear is equipped and the turn
// advances. On missing or unknown input nothing changes and no turn
// passes.
func HandleEquip(sess *session.Session, args []string) Result {
	if len(args) == 0 {
		return Result{Lines: []string{"Usage: equip <armor|amulet>"}}
	}
	kind, err := gear.ParseKind(args[0])
	if err != nil {
		return Result{Lines: []string{"Usage: equip <armor|amulet>"}}
	}

	rec := sess.EquipGear(kind)
	res := turnResult(sess, rec)
	res.Lines = append(
		[]string{fmt.Sprintf("Equipped %s! %s", kind.DisplayName(), kind.EffectText())},
		res.Lines...,
	)
	return res
}

// HandleQuit ends the session. Leaving costs no turn.
func HandleQuit(sess *session.Session) Result {
	sess.Quit()
	return Result{Lines: []string{"Thanks for playing!"}}
}

// StatusLines renders the status panel: identity, the four attributes,
// state, then one bonus line per equipped item.
func StatusLines(sess *session.Session) []string {
	p := sess.Pet()
	lines := []string{
		fmt.Sprintf("%s %s %s", p.Species().Emoji(), p.Species().DisplayName(), p.Name()),
		fmt.Sprintf("Health: %d/%d", p.Health(), p.MaxHealth()),
		fmt.Sprintf("Energy: %d/%d", p.Energy(), pet.AttrCap),
		fmt.Sprintf("Hunger: %d/%d", p.Hunger(), pet.AttrCap),
		fmt.Sprintf("Happiness: %d/%d", p.Happiness(), pet.AttrCap),
		fmt.Sprintf("State: %s %s", p.State().Emoji(), p.State().DisplayName()),
	}
	for _, item := range p.Items() {
		lines = append(lines, item.Kind.BonusLine())
	}
	return lines
}

// HelpLines renders the command list grouped by category, in
// registration order within each group.
func HelpLines(reg *Registry) []string {
	byCategory := reg.CommandsByCategory()
	lines := []string{"Available commands:"}
	for _, category := range []string{CategoryCare, CategoryGear, CategorySystem} {
		cmds := byCategory[category]
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, titleCase(category)+":")
		for _, cmd := range cmds {
			label := cmd.Name
			if len(cmd.Aliases) > 0 {
				label += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			lines = append(lines, fmt.Sprintf("  %-18s %s", label, cmd.Help))
		}
	}
	return lines
}

// turnResult renders a completed turn: every flavor line in effect
// order, with a state announcement after any outcome that moved the pet.
func turnResult(sess *session.Session, rec session.TurnRecord) Result {
	name := sess.Pet().Name()
	var lines []string
	for _, out := range rec.Outcomes {
		if out.Message != "" {
			lines = append(lines, out.Message)
		}
		if out.StateChanged() {
			lines = append(lines, fmt.Sprintf("%s is now %s %s",
				name, out.StateAfter.Emoji(), out.StateAfter.DisplayName()))
		}
	}
	return Result{Lines: lines, TookTurn: true}
}

// invalidChoice burns the turn: fumbling an input is not free.
func invalidChoice(sess *session.Session) Result {
	res := turnResult(sess, sess.Wait())
	res.Lines = append([]string{"Invalid choice!"}, res.Lines...)
	return res
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
