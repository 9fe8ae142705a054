// Package pet implements the virtual pet core: bounded attributes, the
// five-state behavior machine, and the action surface drivers call.
package pet

// Pet is the aggregate drivers interact with. It owns the attribute store
// and the current behavior state and exposes the four actions plus
// read-only queries. All mutation funnels through the actions, so the
// attribute bounds and the terminal-death rule hold at every observable
// point.
//
// Pets are not safe for concurrent use; the simulation is strictly
// turn-based.
type Pet struct {
	name    string
	species Species
	attrs   Attributes
	state   State

	// sleepTurns counts consecutive turn advances spent in StateSleeping.
	// It resets on every entry into StateSleeping, giving each sleep
	// episode a fresh counter.
	sleepTurns int
}

// New creates a Pet from species, name, and base attributes.
//
// The species bias is applied first: a dragon gains +50 base health, a cat
// +20 base energy (anything unrecognized is stored as a cat). The biased
// health becomes MaxHealth, floored at 1, and the pet starts at that
// health. All attributes are clamped into range and the behavior state is
// selected from the stored attributes, so a pet given zero or negative
// base health is dead from the first query.
func New(species Species, name string, health, energy, hunger, happiness int) *Pet {
	if species != SpeciesDragon {
		species = SpeciesCat
	}
	if species == SpeciesDragon {
		health += dragonHealthBias
	} else {
		energy += catEnergyBias
	}

	attrs := Attributes{
		Health:    health,
		MaxHealth: health,
		Energy:    energy,
		Hunger:    hunger,
		Happiness: happiness,
	}
	attrs.clampAll()

	p := &Pet{
		name:    name,
		species: species,
		attrs:   attrs,
	}
	p.setState(NextState(p.attrs))
	return p
}

// setState records a transition into next, resetting the sleep counter on
// each fresh entry into StateSleeping.
func (p *Pet) setState(next State) {
	if next == StateSleeping && p.state != StateSleeping {
		p.sleepTurns = 0
	}
	p.state = next
}

// Name returns the pet's immutable name.
func (p *Pet) Name() string { return p.name }

// Species returns the pet's species.
func (p *Pet) Species() Species { return p.species }

// State returns the pet's current behavior state.
func (p *Pet) State() State { return p.state }

// Health returns the current health.
func (p *Pet) Health() int { return p.attrs.Health }

// MaxHealth returns the stored max health, before any gear bonuses.
func (p *Pet) MaxHealth() int { return p.attrs.MaxHealth }

// Energy returns the current energy.
func (p *Pet) Energy() int { return p.attrs.Energy }

// Hunger returns the current hunger.
func (p *Pet) Hunger() int { return p.attrs.Hunger }

// Happiness returns the current happiness.
func (p *Pet) Happiness() int { return p.attrs.Happiness }

// Attributes returns a copy of the attribute store.
func (p *Pet) Attributes() Attributes { return p.attrs }

// IsTerminal reports whether the pet is dead. A terminal pet absorbs every
// action and never changes again.
func (p *Pet) IsTerminal() bool { return p.state.Terminal() }

// AdjustHappiness applies a clamped happiness delta without consulting the
// transition rules. Gear bonuses use it after a turn advance. Terminal
// pets are unaffected.
func (p *Pet) AdjustHappiness(delta int) {
	if p.state.Terminal() {
		return
	}
	p.attrs.AddHappiness(delta)
}
