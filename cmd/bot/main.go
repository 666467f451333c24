package main

import (
	"fmt"
	"os"

	"github.com/diegoclair/movie-club-bot/internal/catalog"
	"github.com/diegoclair/movie-club-bot/internal/config"
	"github.com/diegoclair/movie-club-bot/internal/database"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/service"
	"github.com/diegoclair/movie-club-bot/internal/metrics"
	"github.com/diegoclair/movie-club-bot/migrator/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const programName = "movieclub"

var (
	globalFlags = struct {
		debug bool
	}{}
	cfg *config.Config
)

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Debug {
		level = zerolog.DebugLevel
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.With().Str("component", programName).Logger()
}

// app holds what every command needs once the database is open
type app struct {
	db      *database.DB
	svc     *service.Instance
	catalog *catalog.OMDb
}

func (a *app) Close() {
	if a.catalog != nil {
		a.catalog.Close()
	}
	if err := a.db.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}

// openApp opens and migrates the database and wires the services
func openApp(reg prometheus.Registerer) (*app, *metrics.Metrics, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	a := &app{db: db}
	var movies contract.Catalog
	if cfg.OMDbAPIKey != "" {
		a.catalog, err = catalog.NewOMDb(catalog.Config{
			APIKey:        cfg.OMDbAPIKey,
			BaseURL:       cfg.OMDbBaseURL,
			CacheTTL:      cfg.CatalogCacheTTL,
			RatePerSecond: cfg.CatalogRatePerSecond,
		}, m)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		movies = a.catalog
	} else {
		log.Info().Msg("OMDB_API_KEY not set, picks will not be enriched")
	}

	a.svc = service.NewInstance(database.NewInstance(db), movies, m, nil, service.Options{
		PeriodDays:      cfg.RotationPeriodDays,
		EarlyAccessDays: cfg.EarlyAccessDays,
		ConfirmTimeout:  cfg.ConfirmTimeout,
	})
	return a, m, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Slack bot that runs a movie club pick rotation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if globalFlags.debug {
			cfg.Debug = true
		}
		setupLogging(cfg)
		return nil
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(rosterCommand())
	rootCmd.AddCommand(rotationCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
