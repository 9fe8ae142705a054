// Package config provides Viper-based configuration loading for the pet simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/petsim/internal/game/pet"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is an optional log file path. When set, log output goes to the
	// file instead of stderr; the interactive driver sets this so log
	// lines never tear its screen.
	File string `mapstructure:"file"`
}

// GameConfig holds game driver settings. Balance values (state
// thresholds, action deltas, gear bonuses) are fixed in code and are
// deliberately absent here.
type GameConfig struct {
	// DefaultPetName names the pet when the player submits a blank name.
	DefaultPetName string `mapstructure:"default_pet_name"`
	// DefaultSpecies is the species preselected at creation: "cat" or "dragon".
	DefaultSpecies string `mapstructure:"default_species"`
	// TurnDelay is the cosmetic pause after each turn in the interactive
	// driver. Zero disables pacing.
	TurnDelay time.Duration `mapstructure:"turn_delay"`
	// ScenarioDir is the directory the scenario runner reads by default.
	ScenarioDir string `mapstructure:"scenario_dir"`
}

// Species returns the configured default species.
//
// Precondition: the config passed Validate.
func (g GameConfig) Species() pet.Species {
	s, err := pet.ParseSpecies(g.DefaultSpecies)
	if err != nil {
		return pet.SpeciesCat
	}
	return s
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.DefaultPetName == "" {
		errs = append(errs, "game.default_pet_name must not be empty")
	}
	if _, err := pet.ParseSpecies(g.DefaultSpecies); err != nil {
		errs = append(errs, fmt.Sprintf("game.default_species must be one of [cat, dragon], got %q", g.DefaultSpecies))
	}
	if g.TurnDelay < 0 {
		errs = append(errs, fmt.Sprintf("game.turn_delay must not be negative, got %s", g.TurnDelay))
	}
	if g.ScenarioDir == "" {
		errs = append(errs, "game.scenario_dir must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with PETSIM_ prefix
	v.SetEnvPrefix("PETSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("game.default_pet_name", "Buddy")
	v.SetDefault("game.default_species", "cat")
	v.SetDefault("game.turn_delay", "500ms")
	v.SetDefault("game.scenario_dir", "content/scenarios")
}
