package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/petsim/internal/game/pet"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Game: GameConfig{
			DefaultPetName: "Buddy",
			DefaultSpecies: "cat",
			TurnDelay:      500 * time.Millisecond,
			ScenarioDir:    "content/scenarios",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
  file: petsim.log
game:
  default_pet_name: Whiskers
  default_species: dragon
  turn_delay: 250ms
  scenario_dir: /tmp/scenarios
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "petsim.log", cfg.Logging.File)
	assert.Equal(t, "Whiskers", cfg.Game.DefaultPetName)
	assert.Equal(t, "dragon", cfg.Game.DefaultSpecies)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.TurnDelay)
	assert.Equal(t, "/tmp/scenarios", cfg.Game.ScenarioDir)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: warn
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "", cfg.Logging.File)
	assert.Equal(t, "Buddy", cfg.Game.DefaultPetName)
	assert.Equal(t, "cat", cfg.Game.DefaultSpecies)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.TurnDelay)
	assert.Equal(t, "content/scenarios", cfg.Game.ScenarioDir)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: info
`), 0644)
	require.NoError(t, err)

	t.Setenv("PETSIM_LOGGING_LEVEL", "debug")
	t.Setenv("PETSIM_GAME_DEFAULT_SPECIES", "dragon")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "dragon", cfg.Game.DefaultSpecies)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateDefaultSpecies(t *testing.T) {
	for _, species := range []string{"cat", "dragon"} {
		cfg := validConfig()
		cfg.Game.DefaultSpecies = species
		assert.NoError(t, cfg.Validate(), "species %q should be valid", species)
	}
	cfg := validConfig()
	cfg.Game.DefaultSpecies = "unicorn"
	assert.Error(t, cfg.Validate())
}

func TestValidateDefaultPetNameEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Game.DefaultPetName = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateTurnDelayNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Game.TurnDelay = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidateScenarioDirEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Game.ScenarioDir = ""
	assert.Error(t, cfg.Validate())
}

func TestGameSpecies(t *testing.T) {
	cfg := validConfig()
	cfg.Game.DefaultSpecies = "dragon"
	assert.Equal(t, pet.SpeciesDragon, cfg.Game.Species())

	cfg.Game.DefaultSpecies = "Cat"
	assert.Equal(t, pet.SpeciesCat, cfg.Game.Species(), "species parsing is case-insensitive")
}

// Property-based tests

func TestPropertyValidTurnDelayRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ms := rapid.IntRange(0, 10000).Draw(t, "delay_ms")
		cfg := validConfig()
		cfg.Game.TurnDelay = time.Duration(ms) * time.Millisecond
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid delay %dms rejected: %v", ms, err)
		}
	})
}

func TestPropertyNegativeTurnDelayRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ms := rapid.IntRange(-10000, -1).Draw(t, "delay_ms")
		cfg := validConfig()
		cfg.Game.TurnDelay = time.Duration(ms) * time.Millisecond
		if err := cfg.Validate(); err == nil {
			t.Fatalf("negative delay %dms accepted", ms)
		}
	})
}
