package pet

import "fmt"

// Per-state action and turn deltas. Balance numbers are fixed in code,
// never in configuration.
const (
	happyFeedHunger    = -30
	happyFeedHappiness = 10
	happyPlayHappiness = 20
	happyPlayEnergy    = -15
	happyPlayHunger    = 10
	happyTickEnergy    = -5
	happyTickHunger    = 8
	happyTickHappiness = -2

	normalFeedHunger    = -25
	normalFeedHappiness = 5
	normalPlayHappiness = 15
	normalPlayEnergy    = -20
	normalPlayHunger    = 10
	normalTickEnergy    = -5
	normalTickHunger    = 10
	normalTickHappiness = -3

	hungryFeedHunger    = -40
	hungryFeedHappiness = 15
	hungryTickEnergy    = -8
	hungryTickHunger    = 12
	hungryTickHappiness = -10
	hungryTickHealth    = -5

	sleepTickEnergy = 20
	sleepTickHealth = 5

	// Wake conditions checked by the sleeping turn advance, after the
	// energy gain: a full rest (two turns) or near-full energy.
	sleepWakeTurns  = 2
	sleepWakeEnergy = 90
)

// Feed offers the pet a meal. Hungrier states eat more. Sleeping and dead
// pets reject the meal untouched.
func (p *Pet) Feed() Outcome {
	before := p.state
	switch p.state {
	case StateHappy:
		p.attrs.AddHunger(happyFeedHunger)
		p.attrs.AddHappiness(happyFeedHappiness)
		p.setState(NextState(p.attrs))
		return p.applied(ActionFeed, before, fmt.Sprintf("%s enjoys the meal!", p.name))
	case StateNormal:
		p.attrs.AddHunger(normalFeedHunger)
		p.attrs.AddHappiness(normalFeedHappiness)
		p.setState(NextState(p.attrs))
		return p.applied(ActionFeed, before, fmt.Sprintf("%s eats the food.", p.name))
	case StateHungry:
		p.attrs.AddHunger(hungryFeedHunger)
		p.attrs.AddHappiness(hungryFeedHappiness)
		p.setState(NextState(p.attrs))
		return p.applied(ActionFeed, before, fmt.Sprintf("%s devours the food hungrily!", p.name))
	case StateSleeping:
		return p.rejected(ActionFeed, ReasonAsleep, fmt.Sprintf("%s is sleeping! Wake them up first.", p.name))
	default:
		return p.rejected(ActionFeed, ReasonDead, p.passedAway())
	}
}

// Play romps with the pet: happiness up, energy down, hunger up. A hungry
// pet refuses; playing with a sleeping pet wakes it instead.
func (p *Pet) Play() Outcome {
	before := p.state
	switch p.state {
	case StateHappy:
		p.attrs.AddHappiness(happyPlayHappiness)
		p.attrs.AddEnergy(happyPlayEnergy)
		p.attrs.AddHunger(happyPlayHunger)
		p.setState(NextState(p.attrs))
		return p.applied(ActionPlay, before, fmt.Sprintf("%s plays joyfully!", p.name))
	case StateNormal:
		p.attrs.AddHappiness(normalPlayHappiness)
		p.attrs.AddEnergy(normalPlayEnergy)
		p.attrs.AddHunger(normalPlayHunger)
		p.setState(NextState(p.attrs))
		return p.applied(ActionPlay, before, fmt.Sprintf("%s plays a bit.", p.name))
	case StateHungry:
		return p.rejected(ActionPlay, ReasonTooHungry, fmt.Sprintf("%s is too hungry to play!", p.name))
	case StateSleeping:
		// Waking bypasses the transition rules: the pet is Normal for
		// this turn regardless of thresholds.
		p.setState(StateNormal)
		return p.applied(ActionPlay, before, fmt.Sprintf("%s wakes up!", p.name))
	default:
		return p.rejected(ActionPlay, ReasonDead, p.passedAway())
	}
}

// Sleep puts the pet to bed. Hungry pets refuse and sleeping pets stay
// put.
func (p *Pet) Sleep() Outcome {
	before := p.state
	switch p.state {
	case StateHappy:
		p.setState(StateSleeping)
		return p.applied(ActionSleep, before, fmt.Sprintf("%s takes a nap...", p.name))
	case StateNormal:
		p.setState(StateSleeping)
		return p.applied(ActionSleep, before, fmt.Sprintf("%s goes to sleep...", p.name))
	case StateHungry:
		return p.rejected(ActionSleep, ReasonCantSleepHungry, fmt.Sprintf("%s can't sleep when hungry!", p.name))
	case StateSleeping:
		return p.rejected(ActionSleep, ReasonAlreadyAsleep, fmt.Sprintf("%s is already sleeping...", p.name))
	default:
		return p.rejected(ActionSleep, ReasonDead, p.passedAway())
	}
}

// AdvanceTurn moves the simulation one turn: energy drains, hunger creeps
// up, happiness fades, and a starving pet loses health. A sleeping pet
// recovers instead and manages its own wake conditions. A dead pet does
// not tick.
func (p *Pet) AdvanceTurn() Outcome {
	before := p.state
	switch p.state {
	case StateHappy:
		p.attrs.AddEnergy(happyTickEnergy)
		p.attrs.AddHunger(happyTickHunger)
		p.attrs.AddHappiness(happyTickHappiness)
		p.setState(NextState(p.attrs))
		return p.applied(ActionAdvance, before, "")
	case StateNormal:
		p.attrs.AddEnergy(normalTickEnergy)
		p.attrs.AddHunger(normalTickHunger)
		p.attrs.AddHappiness(normalTickHappiness)
		p.setState(NextState(p.attrs))
		return p.applied(ActionAdvance, before, "")
	case StateHungry:
		p.attrs.AddEnergy(hungryTickEnergy)
		p.attrs.AddHunger(hungryTickHunger)
		p.attrs.AddHappiness(hungryTickHappiness)
		p.attrs.AddHealth(hungryTickHealth)
		p.setState(NextState(p.attrs))
		return p.applied(ActionAdvance, before, "")
	case StateSleeping:
		return p.advanceSleeping(before)
	default:
		return p.rejected(ActionAdvance, ReasonDead, "")
	}
}

// advanceSleeping handles the sleeping turn: the pet recovers energy and
// health toward its stored caps, then wakes once it has slept
// sleepWakeTurns turns or energy has reached sleepWakeEnergy, whichever
// comes first. The wake check runs here rather than in NextState, which
// would re-select sleeping while energy is still low and the counter
// could never fire.
func (p *Pet) advanceSleeping(before State) Outcome {
	p.sleepTurns++
	p.attrs.AddEnergy(sleepTickEnergy)
	p.attrs.AddHealth(sleepTickHealth)
	if p.sleepTurns >= sleepWakeTurns || p.attrs.Energy >= sleepWakeEnergy {
		p.setState(StateNormal)
		return p.applied(ActionAdvance, before, fmt.Sprintf("%s wakes up refreshed!", p.name))
	}
	return p.applied(ActionAdvance, before, "")
}

func (p *Pet) applied(action Action, before State, msg string) Outcome {
	return Outcome{
		Action:      action,
		Applied:     true,
		Message:     msg,
		StateBefore: before,
		StateAfter:  p.state,
	}
}

func (p *Pet) rejected(action Action, reason RejectReason, msg string) Outcome {
	return Outcome{
		Action:      action,
		Reason:      reason,
		Message:     msg,
		StateBefore: p.state,
		StateAfter:  p.state,
	}
}

func (p *Pet) passedAway() string {
	return fmt.Sprintf("%s has passed away...", p.name)
}
