package main

import (
	"context"
	"fmt"

	"github.com/dsjohal14/citysearch/internal/corpus"
	"github.com/dsjohal14/citysearch/internal/libs/config"
	"github.com/dsjohal14/citysearch/internal/libs/obs"
	"github.com/dsjohal14/citysearch/internal/scope/search"
	"github.com/dsjohal14/citysearch/internal/scope/timing"
	"github.com/dsjohal14/citysearch/internal/scope/trie"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	corpusPath     string
	databaseURL    string
	logLevel       string
	strictHash     bool
	foldDiacritics bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	if cfg, err := config.Load(); err == nil {
		opts.corpusPath = cfg.CorpusPath
		opts.databaseURL = cfg.DatabaseURL
		opts.logLevel = cfg.LogLevel
		opts.strictHash = cfg.StrictHashAlphabet
		opts.foldDiacritics = cfg.FoldDiacritics
	} else {
		opts.corpusPath = "data.json"
		opts.logLevel = "warn"
	}

	root := &cobra.Command{
		Use:          "citysearch",
		Short:        "Search place names with KMP, Z, rolling-hash and trie lookups",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			obs.SetOutput(cmd.ErrOrStderr())
			obs.InitLogger(opts.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.corpusPath, "corpus", opts.corpusPath, "Path to the JSON corpus document")
	flags.StringVar(&opts.databaseURL, "database-url", opts.databaseURL, "Postgres connection string; overrides --corpus")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.strictHash, "strict-hash", opts.strictHash, "Reject hashing queries outside a-z")
	flags.BoolVar(&opts.foldDiacritics, "fold-diacritics", opts.foldDiacritics, "Strip diacritics from names and queries")

	root.AddCommand(
		newQueryCmd(opts),
		newBenchCmd(opts),
		newStatsCmd(opts),
		newAlgorithmsCmd(),
	)
	return root
}

// newService loads the corpus, builds the trie index and wires a fresh aggregator
func newService(ctx context.Context, opts *options) (*search.Service, error) {
	src, closeSrc, err := corpus.Open(ctx, opts.databaseURL, opts.corpusPath)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	c, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	d := search.NewDispatcher(c, trie.NewIndex(), search.Options{
		StrictHashAlphabet: opts.strictHash,
		FoldDiacritics:     opts.foldDiacritics,
	})
	if err := d.BuildIndex(); err != nil {
		return nil, fmt.Errorf("failed to build trie index: %w", err)
	}

	logger := obs.Logger("cli")
	logger.Debug().
		Str("source", src.Name()).
		Int("names", c.Count()).
		Int("trie_words", d.Index().Len()).
		Msg("corpus ready")

	return search.NewService(d, timing.NewAggregator(), obs.Logger("search")), nil
}
