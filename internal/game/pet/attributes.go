package pet

// AttrCap is the upper bound for energy, hunger, and happiness.
const AttrCap = 100

// Attributes is the bounded numeric core of a pet. Health stays within
// [0, MaxHealth]; energy, hunger, and happiness stay within [0, AttrCap].
// All mutation goes through the Add methods, which clamp.
//
// Invariant: MaxHealth >= 1 once clampAll has run.
type Attributes struct {
	Health    int
	MaxHealth int
	Energy    int
	Hunger    int
	Happiness int
}

// AddHealth applies a clamped delta to health.
// Postcondition: 0 <= Health <= MaxHealth.
func (a *Attributes) AddHealth(delta int) {
	a.Health = clampInt(a.Health+delta, 0, a.MaxHealth)
}

// AddEnergy applies a clamped delta to energy.
// Postcondition: 0 <= Energy <= AttrCap.
func (a *Attributes) AddEnergy(delta int) {
	a.Energy = clampInt(a.Energy+delta, 0, AttrCap)
}

// AddHunger applies a clamped delta to hunger.
// Postcondition: 0 <= Hunger <= AttrCap.
func (a *Attributes) AddHunger(delta int) {
	a.Hunger = clampInt(a.Hunger+delta, 0, AttrCap)
}

// AddHappiness applies a clamped delta to happiness.
// Postcondition: 0 <= Happiness <= AttrCap.
func (a *Attributes) AddHappiness(delta int) {
	a.Happiness = clampInt(a.Happiness+delta, 0, AttrCap)
}

// clampAll normalizes every field into range, flooring MaxHealth at 1.
// New runs it once at creation; afterwards the Add methods keep the
// invariants.
func (a *Attributes) clampAll() {
	if a.MaxHealth < 1 {
		a.MaxHealth = 1
	}
	a.Health = clampInt(a.Health, 0, a.MaxHealth)
	a.Energy = clampInt(a.Energy, 0, AttrCap)
	a.Hunger = clampInt(a.Hunger, 0, AttrCap)
	a.Happiness = clampInt(a.Happiness, 0, AttrCap)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
