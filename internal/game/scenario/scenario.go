// Package scenario loads and replays scripted pet-care runs. A scenario
// file names the starting pet and the ordered command lines to feed the
// session. Scenario files script inputs only; thresholds and deltas are
// fixed in code and never appear here.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/petsim/internal/game/command"
	"github.com/cory-johannsen/petsim/internal/game/gear"
	"github.com/cory-johannsen/petsim/internal/game/pet"
)

// PetSpec selects the starting pet. Attribute fields left unset fall
// back to the builder defaults.
type PetSpec struct {
	Name      string `yaml:"name"`
	Species   string `yaml:"species"`
	Health    *int   `yaml:"health"`
	Energy    *int   `yaml:"energy"`
	Hunger    *int   `yaml:"hunger"`
	Happiness *int   `yaml:"happiness"`
}

// Scenario is one scripted run, loaded from YAML.
type Scenario struct {
	Name  string   `yaml:"name"`
	Pet   PetSpec  `yaml:"pet"`
	Steps []string `yaml:"steps"`
}

// Load reads and validates a single scenario file.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a validated Scenario, or an error naming the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("validating %q: %w", path, err)
	}
	return &sc, nil
}

// LoadDirectory reads every *.yaml file in dir as a scenario, in file
// name order.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the loaded scenarios, or an error if any file
// fails to load.
func LoadDirectory(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scenario dir %q: %w", dir, err)
	}
	var scenarios []*Scenario
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		sc, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// Validate checks the scenario for structural problems.
//
// Postcondition: Returns nil when the scenario is playable, or one error
// listing every violation.
func (s *Scenario) Validate() error {
	var violations []string

	if strings.TrimSpace(s.Name) == "" {
		violations = append(violations, "name must not be empty")
	}
	if s.Pet.Species != "" {
		if _, err := pet.ParseSpecies(s.Pet.Species); err != nil {
			violations = append(violations, fmt.Sprintf("unknown species %q", s.Pet.Species))
		}
	}
	if s.Pet.Health != nil && *s.Pet.Health < 0 {
		violations = append(violations, "pet.health must be >= 0")
	}
	bounded := []struct {
		name  string
		value *int
	}{
		{"pet.energy", s.Pet.Energy},
		{"pet.hunger", s.Pet.Hunger},
		{"pet.happiness", s.Pet.Happiness},
	}
	for _, f := range bounded {
		if f.value != nil && (*f.value < 0 || *f.value > pet.AttrCap) {
			violations = append(violations, fmt.Sprintf("%s must be within [0, %d]", f.name, pet.AttrCap))
		}
	}

	if len(s.Steps) == 0 {
		violations = append(violations, "steps must not be empty")
	}
	reg := command.DefaultRegistry()
	for i, step := range s.Steps {
		parsed := command.Parse(step)
		if parsed.Command == "" {
			violations = append(violations, fmt.Sprintf("step %d is blank", i+1))
			continue
		}
		cmd, ok := reg.Resolve(parsed.Command)
		if !ok {
			violations = append(violations, fmt.Sprintf("step %d: unknown command %q", i+1, parsed.Command))
			continue
		}
		if cmd.Handler == command.HandlerEquip {
			if len(parsed.Args) == 0 {
				violations = append(violations, fmt.Sprintf("step %d: equip needs a gear kind", i+1))
			} else if _, err := gear.ParseKind(parsed.Args[0]); err != nil {
				violations = append(violations, fmt.Sprintf("step %d: unknown gear kind %q", i+1, parsed.Args[0]))
			}
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("invalid scenario: %s", strings.Join(violations, "; "))
	}
	return nil
}

// BuildPet constructs the starting pet, routing unset fields through the
// builder defaults.
func (s *Scenario) BuildPet() *pet.Pet {
	b := pet.NewBuilder().Name(s.Pet.Name)
	if s.Pet.Species != "" {
		if sp, err := pet.ParseSpecies(s.Pet.Species); err == nil {
			b = b.Species(sp)
		}
	}
	if s.Pet.Health != nil {
		b = b.Health(*s.Pet.Health)
	}
	if s.Pet.Energy != nil {
		b = b.Energy(*s.Pet.Energy)
	}
	if s.Pet.Hunger != nil {
		b = b.Hunger(*s.Pet.Hunger)
	}
	if s.Pet.Happiness != nil {
		b = b.Happiness(*s.Pet.Happiness)
	}
	return b.Build()
}
