package gear

import (
	"github.com/cory-johannsen/petsim/internal/game/pet"
)

// Equipped is the outermost handle over a pet and its gear stack. Actions
// and queries forward to the pet; the stack adjusts effective max health
// and adds per-turn happiness. Equip returns a fresh handle rather than
// mutating in place, so a driver swaps the value it holds.
type Equipped struct {
	pet   *pet.Pet
	items []Item
}

// NewEquipped wraps a pet with an empty gear stack.
//
// Precondition: p is non-nil.
func NewEquipped(p *pet.Pet) Equipped {
	return Equipped{pet: p}
}

// Equip adds one instance of the given kind and returns the new handle.
// The receiver keeps its old stack.
//
// Postcondition: the returned handle wraps the same pet with one more item;
// stacking is cumulative, duplicates are allowed.
func (e Equipped) Equip(k Kind) Equipped {
	items := make([]Item, len(e.items), len(e.items)+1)
	copy(items, e.items)
	return Equipped{
		pet:   e.pet,
		items: append(items, NewItem(k)),
	}
}

// Items returns the equipped gear in equip order (outermost last).
func (e Equipped) Items() []Item {
	items := make([]Item, len(e.items))
	copy(items, e.items)
	return items
}

// MaxHealth returns the effective cap: the pet's own max health plus the
// armor bonus per equipped armor. The stored cap, and with it the range
// healing can reach, is untouched.
func (e Equipped) MaxHealth() int {
	effective := e.pet.MaxHealth()
	for _, item := range e.items {
		if item.Kind == KindArmor {
			effective += ArmorMaxHealthBonus
		}
	}
	return effective
}

// Feed forwards to the pet.
func (e Equipped) Feed() pet.Outcome { return e.pet.Feed() }

// Play forwards to the pet.
func (e Equipped) Play() pet.Outcome { return e.pet.Play() }

// Sleep forwards to the pet.
func (e Equipped) Sleep() pet.Outcome { return e.pet.Sleep() }

// AdvanceTurn forwards to the pet, then applies the amulet bonus per
// equipped amulet in equip order. A terminal pet takes no bonus.
func (e Equipped) AdvanceTurn() pet.Outcome {
	out := e.pet.AdvanceTurn()
	for _, item := range e.items {
		if item.Kind == KindAmulet {
			e.pet.AdjustHappiness(AmuletHappinessPerTurn)
		}
	}
	return out
}

// Name forwards to the pet.
func (e Equipped) Name() string { return e.pet.Name() }

// Species forwards to the pet.
func (e Equipped) Species() pet.Species { return e.pet.Species() }

// State forwards to the pet.
func (e Equipped) State() pet.State { return e.pet.State() }

// Health forwards to the pet.
func (e Equipped) Health() int { return e.pet.Health() }

// Energy forwards to the pet.
func (e Equipped) Energy() int { return e.pet.Energy() }

// Hunger forwards to the pet.
func (e Equipped) Hunger() int { return e.pet.Hunger() }

// Happiness forwards to the pet.
func (e Equipped) Happiness() int { return e.pet.Happiness() }

// Attributes returns a copy of the pet's stored attributes. MaxHealth in
// the copy is the stored cap; use Equipped.MaxHealth for the effective one.
func (e Equipped) Attributes() pet.Attributes { return e.pet.Attributes() }

// IsTerminal forwards to the pet.
func (e Equipped) IsTerminal() bool { return e.pet.IsTerminal() }
