package pet

// Default identity and base attributes used by NewBuilder.
const (
	DefaultName      = "Unnamed"
	DefaultHealth    = 100
	DefaultEnergy    = 80
	DefaultHunger    = 30
	DefaultHappiness = 70
)

// DefaultSpecies is the species used when none is chosen.
const DefaultSpecies = SpeciesCat

// Builder assembles a Pet, supplying defaults for anything not set.
// Construct with NewBuilder; the zero value carries no defaults.
type Builder struct {
	name      string
	species   Species
	health    int
	energy    int
	hunger    int
	happiness int
}

// NewBuilder returns a Builder seeded with the default identity and base
// attributes.
func NewBuilder() *Builder {
	return &Builder{
		name:      DefaultName,
		species:   DefaultSpecies,
		health:    DefaultHealth,
		energy:    DefaultEnergy,
		hunger:    DefaultHunger,
		happiness: DefaultHappiness,
	}
}

// Name sets the pet's name. An empty string keeps the current name.
func (b *Builder) Name(name string) *Builder {
	if name != "" {
		b.name = name
	}
	return b
}

// Species sets the pet's species.
func (b *Builder) Species(s Species) *Builder {
	b.species = s
	return b
}

// Health sets the base health, before the species bias.
func (b *Builder) Health(v int) *Builder {
	b.health = v
	return b
}

// Energy sets the base energy, before the species bias.
func (b *Builder) Energy(v int) *Builder {
	b.energy = v
	return b
}

// Hunger sets the base hunger.
func (b *Builder) Hunger(v int) *Builder {
	b.hunger = v
	return b
}

// Happiness sets the base happiness.
func (b *Builder) Happiness(v int) *Builder {
	b.happiness = v
	return b
}

// Build creates the Pet. See New for the species bias and clamping rules.
func (b *Builder) Build() *Pet {
	return New(b.species, b.name, b.health, b.energy, b.hunger, b.happiness)
}
