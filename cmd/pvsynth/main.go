package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chrissnell/pvsynth/internal/app"
	"github.com/chrissnell/pvsynth/internal/constants"
	"github.com/chrissnell/pvsynth/internal/log"
	"github.com/chrissnell/pvsynth/pkg/config"
	"github.com/chrissnell/pvsynth/pkg/solar"
)

func main() {
	cfgFile := flag.String("config", "", "Path to YAML configuration file (default: built-in Oslo reference run)")
	outPath := flag.String("out", "", "Output CSV path, overrides output.path")
	detailPath := flag.String("detail", "", "Optional clear-sky detail CSV path, overrides output.detail_path")
	date := flag.String("date", "", "Day to generate as YYYY-MM-DD, overrides date")
	model := flag.String("model", "", fmt.Sprintf("Clear-sky model %v, overrides model.name", solar.Models()))
	seed := flag.Uint64("seed", 0, "Cloud noise seed, overrides noise.seed")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pvsynth %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug, log.FileOptions{}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		log.Sync()
		os.Exit(1)
	}

	// Flags win over the file; only flags actually given are applied.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Path = *outPath
		case "detail":
			cfg.Output.DetailPath = *detailPath
		case "date":
			cfg.Date = *date
		case "model":
			cfg.Model.Name = *model
		case "seed":
			cfg.Noise.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Errorf("Invalid configuration: %v", err)
		log.Sync()
		os.Exit(1)
	}

	if cfg.Log.File != "" {
		err := log.Init(*debug, log.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		})
		if err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	log.Infof("pvsynth %s starting", constants.Version)
	log.Infow("configuration loaded",
		"config", *cfgFile,
		"site", cfg.Site.Name,
		"date", cfg.Date,
		"step", cfg.Step,
		"model", cfg.Model.Name,
	)
	log.Debugw("output settings",
		"path", cfg.Output.Path,
		"detail_path", cfg.Output.DetailPath,
		"per_unit", cfg.Output.PerUnit,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg, log.GetSugaredLogger()).Run(ctx); err != nil {
		log.Errorf("Generation failed: %v", err)
		log.Sync()
		os.Exit(1)
	}
}

func loadConfig(cfgFile string) (*config.ConfigData, error) {
	var provider config.ConfigProvider = config.DefaultProvider{}
	if cfgFile != "" {
		filename, _ := filepath.Abs(cfgFile)
		provider = config.NewYAMLProvider(filename)
	}

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	return cfgData, nil
}
