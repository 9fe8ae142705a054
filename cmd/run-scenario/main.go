// Package main provides the scenario runner binary that replays scripted
// command sequences against fresh pets and prints each transcript.
package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/cory-johannsen/petsim/internal/config"
	"github.com/cory-johannsen/petsim/internal/game/scenario"
	"github.com/cory-johannsen/petsim/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	filePath := flag.String("file", "", "run a single scenario file instead of the configured directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var scenarios []*scenario.Scenario
	if *filePath != "" {
		sc, err := scenario.Load(*filePath)
		if err != nil {
			logger.Fatal("loading scenario", zap.Error(err))
		}
		scenarios = append(scenarios, sc)
	} else {
		scenarios, err = scenario.LoadDirectory(cfg.Game.ScenarioDir)
		if err != nil {
			logger.Fatal("loading scenario directory", zap.Error(err))
		}
	}

	logger.Info("running scenarios", zap.Int("count", len(scenarios)))

	for _, sc := range scenarios {
		result := scenario.Run(sc, logger)

		fmt.Printf("=== %s ===\n", sc.Name)
		for _, line := range result.Lines {
			fmt.Println(line)
		}
		fmt.Println()

		logger.Info("scenario complete",
			zap.String("scenario", sc.Name),
			zap.String("session_id", result.SessionID),
			zap.Int("turns", result.Turns),
			zap.String("end", string(result.End)),
			zap.Int("steps_skipped", result.Skipped),
		)
	}
}
