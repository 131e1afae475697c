package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/dipdup-io/l2-token-catalog/internal/catalog"
	"github.com/dipdup-io/l2-token-catalog/internal/storage/postgres"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Token catalog with TVL aggregation",
	}
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).Level(zerolog.InfoLevel)

	configPath := rootCmd.PersistentFlags().StringP("config", "c", "catalog.yml", "path to YAML config file")
	if err := rootCmd.Execute(); err != nil {
		log.Panic().Err(err).Msg("command line execute")
		return
	}
	if err := rootCmd.MarkFlagRequired("config"); err != nil {
		log.Panic().Err(err).Msg("config command line arg is required")
		return
	}

	cfg, err := Load(*configPath)
	if err != nil {
		log.Err(err).Msg("")
		return
	}
	if cfg.Catalog.MaxCPU > 0 {
		runtime.GOMAXPROCS(cfg.Catalog.MaxCPU)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = zerolog.LevelInfoValue
	}

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Panic().Err(err).Msg("parsing log level")
		return
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
		return file + ":" + strconv.Itoa(line)
	}
	log.Logger = log.Logger.With().Caller().Logger()

	ctx, cancel := context.WithCancel(context.Background())

	pg, err := postgres.Create(ctx, cfg.Database)
	if err != nil {
		log.Panic().Err(err).Msg("database creation")
		return
	}

	indexerName := cfg.Catalog.IndexerName
	if indexerName == "" {
		indexerName = "Indexer"
	}
	state, err := pg.State.ByName(ctx, indexerName)
	switch {
	case err == nil:
		log.Info().
			Str("indexer", state.Name).
			Uint64("height", state.LastHeight).
			Msg("catalog is fed up to")
	case pg.State.IsNoRows(err):
		log.Info().Str("indexer", indexerName).Msg("indexer has not written a cursor yet")
	default:
		log.Err(err).Msg("indexer state lookup")
	}

	cache := catalog.NewTvlCache(cfg.Catalog.TTL())
	cache.Start(ctx)

	service := catalog.NewService(pg.Token, cache, cfg.Catalog.MaxPageSize)

	monitor := NewMonitor(service, cfg.Catalog.Interval())
	monitor.Start(ctx)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-signals

	cancel()

	if err := monitor.Close(); err != nil {
		log.Panic().Err(err).Msg("closing monitor")
	}
	if err := cache.Close(); err != nil {
		log.Panic().Err(err).Msg("closing tvl cache")
	}
	if err := pg.Storage.Close(); err != nil {
		log.Panic().Err(err).Msg("closing database connection")
	}

	close(signals)
}
