package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/petsim/internal/game/pet"
)

const validScenarioYAML = `
name: "Feeding time"
pet:
  name: Whiskers
  species: cat
  hunger: 85
steps:
  - feed
  - play
  - status
`

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feeding.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScenarioYAML), 0644))

	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Feeding time", sc.Name)
	assert.Equal(t, "Whiskers", sc.Pet.Name)
	assert.Equal(t, "cat", sc.Pet.Species)
	require.NotNil(t, sc.Pet.Hunger)
	assert.Equal(t, 85, *sc.Pet.Hunger)
	assert.Nil(t, sc.Pet.Health, "unset attributes stay nil")
	assert.Equal(t, []string{"feed", "play", "status"}, sc.Steps)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	yaml := `
name: "Bad file"
pet:
  name: Momo
  speed: 9
steps:
  - feed
`
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/scenario.yaml")
	assert.Error(t, err)
}

func TestLoad_CollectsAllViolations(t *testing.T) {
	yaml := `
name: ""
pet:
  species: unicorn
steps:
  - feed
  - dance
`
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
	assert.Contains(t, err.Error(), `unknown species "unicorn"`)
	assert.Contains(t, err.Error(), `unknown command "dance"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name:     "valid",
			scenario: Scenario{Name: "ok", Steps: []string{"feed"}},
		},
		{
			name:     "valid equip step",
			scenario: Scenario{Name: "ok", Steps: []string{"equip amulet"}},
		},
		{
			name:     "empty name",
			scenario: Scenario{Steps: []string{"feed"}},
			wantErr:  "name must not be empty",
		},
		{
			name:     "unknown species",
			scenario: Scenario{Name: "ok", Pet: PetSpec{Species: "unicorn"}, Steps: []string{"feed"}},
			wantErr:  "unknown species",
		},
		{
			name:     "negative health",
			scenario: Scenario{Name: "ok", Pet: PetSpec{Health: intp(-1)}, Steps: []string{"feed"}},
			wantErr:  "pet.health must be >= 0",
		},
		{
			name:     "energy out of range",
			scenario: Scenario{Name: "ok", Pet: PetSpec{Energy: intp(101)}, Steps: []string{"feed"}},
			wantErr:  "pet.energy must be within",
		},
		{
			name:     "no steps",
			scenario: Scenario{Name: "ok"},
			wantErr:  "steps must not be empty",
		},
		{
			name:     "blank step",
			scenario: Scenario{Name: "ok", Steps: []string{"  "}},
			wantErr:  "step 1 is blank",
		},
		{
			name:     "unknown command",
			scenario: Scenario{Name: "ok", Steps: []string{"dance"}},
			wantErr:  `unknown command "dance"`,
		},
		{
			name:     "equip without kind",
			scenario: Scenario{Name: "ok", Steps: []string{"equip"}},
			wantErr:  "equip needs a gear kind",
		},
		{
			name:     "equip unknown kind",
			scenario: Scenario{Name: "ok", Steps: []string{"equip sword"}},
			wantErr:  `unknown gear kind "sword"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildPet_Defaults(t *testing.T) {
	sc := Scenario{Name: "defaults", Steps: []string{"feed"}}

	p := sc.BuildPet()

	assert.Equal(t, pet.DefaultName, p.Name())
	assert.Equal(t, pet.SpeciesCat, p.Species())
	assert.Equal(t, 100, p.MaxHealth())
	assert.Equal(t, 100, p.Energy())
	assert.Equal(t, 30, p.Hunger())
	assert.Equal(t, 70, p.Happiness())
}

func TestBuildPet_Overrides(t *testing.T) {
	sc := Scenario{
		Name: "dragon",
		Pet: PetSpec{
			Name:    "Ember",
			Species: "dragon",
			Health:  intp(80),
			Hunger:  intp(85),
		},
		Steps: []string{"feed"},
	}

	p := sc.BuildPet()

	assert.Equal(t, "Ember", p.Name())
	assert.Equal(t, pet.SpeciesDragon, p.Species())
	assert.Equal(t, 130, p.MaxHealth(), "dragon bias applies to the chosen health")
	assert.Equal(t, 85, p.Hunger())
	assert.Equal(t, pet.StateHungry, p.State())
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(validScenarioYAML), 0644))

	second := `
name: "Second"
steps:
  - wait
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(second), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	scenarios, err := LoadDirectory(dir)
	require.NoError(t, err)

	require.Len(t, scenarios, 2)
	assert.Equal(t, "Second", scenarios[0].Name, "file name order")
	assert.Equal(t, "Feeding time", scenarios[1].Name)
}

func TestLoadDirectory_PropagatesFileError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("steps: [feed"), 0644))

	_, err := LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_NotADir(t *testing.T) {
	_, err := LoadDirectory("/nonexistent/scenarios")
	assert.Error(t, err)
}
