package pet

// Attribute thresholds for state selection.
const (
	exhaustedEnergy  = 20 // at or below: the pet falls asleep
	starvingHunger   = 80 // at or above: the pet turns hungry
	contentHappiness = 70 // happy needs at least this much happiness...
	contentHunger    = 50 // ...hunger below this...
	contentEnergy    = 50 // ...and energy above this
)

// NextState selects the behavior state for the given attributes. Rules are
// checked in priority order and the first match wins: dead, sleeping,
// hungry, happy, otherwise normal.
//
// NextState is never consulted during a sleeping turn advance. The
// exhausted-energy rule would put the pet straight back to sleep, so the
// sleeping handler checks its own wake conditions instead.
func NextState(a Attributes) State {
	switch {
	case a.Health <= 0:
		return StateDead
	case a.Energy <= exhaustedEnergy:
		return StateSleeping
	case a.Hunger >= starvingHunger:
		return StateHungry
	case a.Happiness >= contentHappiness && a.Hunger < contentHunger && a.Energy > contentEnergy:
		return StateHappy
	default:
		return StateNormal
	}
}
