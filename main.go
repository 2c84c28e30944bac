package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"techbbswatcher/config"
	"techbbswatcher/helpers"
	"techbbswatcher/internal/scraper"
	"techbbswatcher/logger"
	"techbbswatcher/services/notifier"
	"techbbswatcher/services/state"
	"techbbswatcher/services/watcher"
)

var (
	cpuFlag   []string
	gpuFlag   []string
	stateFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "techbbswatcher",
		Short:         "Scan the io-tech.fi marketplace for wanted CPU/GPU listings and alert via Telegram",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	rootCmd.Flags().StringSliceVar(&cpuFlag, "cpus", nil, "CPU models to watch (overrides CPUS)")
	rootCmd.Flags().StringSliceVar(&gpuFlag, "gpus", nil, "GPU models to watch (overrides GPUS)")
	rootCmd.Flags().StringVar(&stateFlag, "state-file", "", "path to the seen-state file (overrides STATE_FILE)")

	if err := rootCmd.Execute(); err != nil {
		if logger.Default == nil {
			logger.Init()
		}
		logger.Default.Fatal().Err(err).Msg("Run failed")
	}
}

func run() error {
	// Load environment variables
	godotenv.Load()

	logger.Init()
	log := logger.Default

	cfg := config.LoadConfig()
	if len(cpuFlag) > 0 {
		cfg.CPUs = cpuFlag
	}
	if len(gpuFlag) > 0 {
		cfg.GPUs = gpuFlag
	}
	if stateFlag != "" {
		cfg.StateFile = stateFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("cpu_keywords", len(cfg.CPUs)).
		Int("gpu_keywords", len(cfg.GPUs)).
		Dur("timeout", cfg.Timeout).
		Msg("Starting run")

	fetcher := helpers.NewFetcher(cfg.Timeout)
	scrapers := scraper.NewSectionScrapers(cfg, fetcher)

	store := state.NewFileStore(cfg.StateFile)

	notif, err := notifier.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.Timeout)
	if err != nil {
		return err
	}
	defer notif.Close()

	w := watcher.NewWatcher(scrapers, store, notif, cfg.MaxThreadAge)
	if err := w.Run(); err != nil {
		return err
	}

	log.Info().Msg("Run completed")
	return nil
}
