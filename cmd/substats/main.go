// Command substats browses per-subset statistics of a tabular data set.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/substats/internal/application/usecase"
	"github.com/tesso57/substats/internal/infrastructure/config"
	"github.com/tesso57/substats/internal/infrastructure/logging"
	"github.com/tesso57/substats/internal/infrastructure/source"
	"github.com/tesso57/substats/internal/presentation/tui"
)

var version = "dev"

type cli struct {
	Source   string           `arg:"" optional:"" help:"Subset data file (json, yaml, csv, xlsx, sqlite)." type:"path"`
	Config   string           `help:"Config file path." type:"path"`
	Lang     string           `help:"UI language (en, es)."`
	LogLevel string           `help:"Log level (trace, debug, info, warn, error)."`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("substats"),
		kong.Description("Browse the statistics of each subset of a data set."),
		kong.Vars{"version": version},
	)

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "substats: %v\n", err)
		os.Exit(1)
	}
}

func run(args cli) error {
	store, err := config.Load(args.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings
	if args.Source != "" {
		cfg.Source = args.Source
	}
	if args.Lang != "" {
		cfg.Language = strings.ToLower(args.Lang)
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}

	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	log := logging.New("main")
	log.WithFields(logrus.Fields{
		"config":   store.Path(),
		"source":   cfg.Source,
		"language": cfg.Language,
	}).Info("starting")

	loader := source.NewLoader(cfg.SourceOptions())
	statistics := usecase.NewStatisticsService(loader, store)

	p := tea.NewProgram(tui.NewModel(cfg, statistics), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		return err
	}
	log.Info("exiting")
	return nil
}
