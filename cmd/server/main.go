package main

import (
	"context"
	"fmt"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/tinsig/internal/api"
	"github.com/skybi/tinsig/internal/config"
	"github.com/skybi/tinsig/internal/metrics"
	"github.com/skybi/tinsig/internal/mining"
	"github.com/skybi/tinsig/internal/storage/inmem"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("the server exited unexpectedly")
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "tinsig-server",
		Short:         "Read-only HTTP API serving the TINSIG mining datasets.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "force debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "datasets",
		Short: "List the served datasets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printDatasets(cmd.Context(), cmd.OutOrStdout())
		},
	})

	return rootCmd
}

func serve(ctx context.Context, verbose bool) error {
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("could not load the configuration")
		return err
	}
	zerolog.SetGlobalLevel(logLevel(cfg, verbose))
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Load the datasets into the in-memory storage driver
	log.Info().Msg("loading datasets...")
	driver := inmem.New(mining.Definitions()...)
	if err := driver.Initialize(ctx); err != nil {
		log.Error().Err(err).Msg("could not load the datasets")
		return err
	}
	defer driver.Close()
	for _, repo := range driver.Datasets() {
		def := repo.Definition()
		log.Debug().Str("dataset", def.Name).Int("records", len(def.Records)).Msg("loaded dataset")
	}

	var collectors *metrics.Metrics
	if cfg.MetricsEnabled {
		collectors = metrics.New()
	}

	// Start up the data API
	log.Info().Str("address", cfg.ListenAddress).Msg("starting up the data API...")
	apis := &api.Service{
		Config:  cfg,
		Storage: driver,
		Metrics: collectors,
	}
	apiErrs := make(chan error, 1)
	if err := apis.Startup(apiErrs); err != nil {
		log.Error().Err(err).Msg("could not start up the data API")
		return err
	}
	defer func() {
		log.Info().Msg("shutting down the data API...")
		if err := apis.Shutdown(); err != nil {
			log.Error().Err(err).Msg("could not shut down the data API gracefully")
		}
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated or the API to fail
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	select {
	case <-shutdown:
		return nil
	case err := <-apiErrs:
		log.Error().Err(err).Msg("the API service raised an unexpected error")
		return err
	}
}

func logLevel(cfg *config.Config, verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	if cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			return level
		}
		log.Warn().Str("log_level", cfg.LogLevel).Msg("ignoring unknown log level")
	}
	if cfg.IsEnvProduction() {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

func printDatasets(ctx context.Context, out io.Writer) error {
	driver := inmem.New(mining.Definitions()...)
	if err := driver.Initialize(ctx); err != nil {
		return err
	}
	defer driver.Close()

	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Dataset", "Endpoint", "Records", "Filter fields", "Date field"})
	for _, repo := range driver.Datasets() {
		def := repo.Definition()
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		dateField := def.DateField
		if dateField == "" {
			dateField = "-"
		}
		table.Append([]string{
			def.Name,
			"/v1/" + def.Name,
			strconv.Itoa(n),
			strings.Join(def.FilterFields, ", "),
			dateField,
		})
	}
	table.Render()
	return nil
}
