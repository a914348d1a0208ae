package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pooltags/internal/config"
	"pooltags/internal/export"
	"pooltags/pkg/models"
	"pooltags/pkg/provider"
	"pooltags/pkg/provider/uniswapv3"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	network := flag.String("network", "", "Export a single network id instead of the configured list")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		log.Debug().Msg("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logging
	setupLogging(cfg.Logging)
	log.Info().Msg("Starting pool tag export")

	apiKey := os.Getenv("SUBGRAPH_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("SUBGRAPH_API_KEY is required")
	}

	networks := cfg.Networks
	if *network != "" {
		networks = []string{*network}
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg, networks, apiKey); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("Export failed")
	}

	log.Info().Msg("Export complete")
}

func run(ctx context.Context, cfg *config.Config, networks []string, apiKey string) error {
	var fetcher provider.TagFetcher = uniswapv3.NewProvider()

	var (
		mu      sync.Mutex
		allTags []models.ContractTag
	)

	// One goroutine per network; page fetching within a network stays
	// sequential.
	g, gCtx := errgroup.WithContext(ctx)
	for _, networkID := range networks {
		networkID := networkID
		g.Go(func() error {
			start := time.Now()
			networkTags, err := fetcher.ReturnTags(gCtx, networkID, apiKey)
			if err != nil {
				return err
			}

			mu.Lock()
			allTags = append(allTags, networkTags...)
			mu.Unlock()

			log.Info().
				Str("network", networkID).
				Str("provider", fetcher.Name()).
				Int("tags", len(networkTags)).
				Dur("elapsed", time.Since(start)).
				Msg("Network export finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	writer := export.NewWriter(cfg.Output.Path, cfg.Output.Format)
	if err := writer.Write(allTags); err != nil {
		return err
	}

	log.Info().
		Int("tags", len(allTags)).
		Str("path", cfg.Output.Path).
		Str("format", cfg.Output.Format).
		Msg("Tags written")
	return nil
}

func setupLogging(cfg config.LoggingConfig) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set output format
	if cfg.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
}
