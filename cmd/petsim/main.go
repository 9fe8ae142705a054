// Package main provides the interactive virtual pet simulator binary.
package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cory-johannsen/petsim/internal/config"
	"github.com/cory-johannsen/petsim/internal/observability"
	"github.com/cory-johannsen/petsim/internal/tui"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	logFile := flag.String("log-file", "", "log destination; overrides the configured path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// The alternate screen owns the terminal while the game runs, so
	// logs always go to a file.
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = "petsim.log"
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting pet simulator",
		zap.String("default_species", cfg.Game.DefaultSpecies),
		zap.Duration("turn_delay", cfg.Game.TurnDelay),
		zap.String("log_file", cfg.Logging.File),
	)

	program := tea.NewProgram(tui.New(cfg, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Fatal("running ui", zap.Error(err))
	}

	fmt.Println("Thanks for playing!")
}
