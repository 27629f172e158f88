// Package main implements the HTTP API server for city search.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dsjohal14/citysearch/internal/corpus"
	apihttp "github.com/dsjohal14/citysearch/internal/http"
	"github.com/dsjohal14/citysearch/internal/libs/config"
	"github.com/dsjohal14/citysearch/internal/libs/obs"
	"github.com/dsjohal14/citysearch/internal/scope/search"
	"github.com/dsjohal14/citysearch/internal/scope/timing"
	"github.com/dsjohal14/citysearch/internal/scope/trie"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	obs.InitLogger(cfg.LogLevel)
	logger := obs.Logger("api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed load leaves the corpus unset; searches then report
	// CORPUS_NOT_LOADED instead of empty results.
	c := loadCorpus(ctx, cfg, logger)

	d := search.NewDispatcher(c, trie.NewIndex(), search.Options{
		StrictHashAlphabet: cfg.StrictHashAlphabet,
		FoldDiacritics:     cfg.FoldDiacritics,
	})
	agg := timing.NewAggregator()
	svc := search.NewService(d, agg, obs.Logger("search"))

	// Prefix queries answer NOT_READY until this completes
	go buildIndex(d, obs.Logger("trie"))

	reporter := timing.NewReporter(agg, cfg.ReportInterval, timing.LogSink(obs.Logger("timing")))
	go reporter.Run(ctx)

	handler := apihttp.NewHandler(svc, logger)
	r := handler.Routes(middleware.Logger)

	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("starting API server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
	logger.Info().Msg("server stopped")
}

func loadCorpus(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *corpus.Corpus {
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	src, closeSrc, err := corpus.Open(loadCtx, cfg.DatabaseURL, cfg.CorpusPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open corpus source")
		return nil
	}
	defer closeSrc()

	c, err := src.Load(loadCtx)
	if err != nil {
		logger.Error().Err(err).Str("source", src.Name()).Msg("failed to load corpus")
		return nil
	}

	logger.Info().
		Str("source", src.Name()).
		Int("groups", len(c.Groups)).
		Int("names", c.Count()).
		Msg("corpus loaded")
	return c
}

func buildIndex(d *search.Dispatcher, logger zerolog.Logger) {
	start := time.Now()
	if err := d.BuildIndex(); err != nil {
		logger.Error().Err(err).Msg("failed to build trie index")
		return
	}
	logger.Info().
		Int("words", d.Index().Len()).
		Dur("took", time.Since(start)).
		Msg("trie index ready")
}
