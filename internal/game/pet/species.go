package pet

import (
	"fmt"
	"strings"
)

// Species identifies the kind of pet. Species biases the starting
// attributes at creation and carries display metadata for drivers; it
// never changes behavior afterward.
type Species string

const (
	SpeciesCat    Species = "cat"
	SpeciesDragon Species = "dragon"
)

// Creation biases applied by New before the attributes are stored.
const (
	dragonHealthBias = 50
	catEnergyBias    = 20
)

// ParseSpecies converts a string into a Species, ignoring case and
// surrounding whitespace.
//
// Postcondition: Returns SpeciesCat or SpeciesDragon, or an error for
// anything else.
func ParseSpecies(s string) (Species, error) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesCat:
		return SpeciesCat, nil
	case SpeciesDragon:
		return SpeciesDragon, nil
	default:
		return "", fmt.Errorf("unknown species %q", s)
	}
}

// DisplayName returns the capitalized species name for player-facing text.
func (s Species) DisplayName() string {
	switch s {
	case SpeciesCat:
		return "Cat"
	case SpeciesDragon:
		return "Dragon"
	default:
		return string(s)
	}
}

// Emoji returns the glyph drivers show next to the species name.
func (s Species) Emoji() string {
	switch s {
	case SpeciesCat:
		return "🐱"
	case SpeciesDragon:
		return "🐉"
	default:
		return "🐾"
	}
}

// Blurb returns the one-line species description shown at pet selection.
func (s Species) Blurb() string {
	switch s {
	case SpeciesCat:
		return "Higher energy, agile"
	case SpeciesDragon:
		return "Higher health, powerful"
	default:
		return ""
	}
}
