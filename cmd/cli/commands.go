package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dsjohal14/citysearch/internal/scope/match"
	"github.com/dsjohal14/citysearch/internal/scope/search"
	"github.com/dsjohal14/citysearch/internal/scope/timing"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newQueryCmd(opts *options) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Run one timed search",
		Long: `Run one timed search over the corpus.

Examples:
  citysearch query spring
  citysearch query --algorithm trie "spring v"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := match.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			svc, err := newService(cmd.Context(), opts)
			if err != nil {
				return err
			}
			res, err := svc.Query(args[0], alg)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(match.KMPAlgorithm), "Algorithm: kmp, z, hashing or trie")
	return cmd
}

func newBenchCmd(opts *options) *cobra.Command {
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench <query>...",
		Short: "Time every algorithm over the given queries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1, got %d", repeat)
			}
			svc, err := newService(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := runBench(svc, args, repeat); err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), svc.Aggregator().Snapshot())
			return nil
		},
	}

	cmd.Flags().IntVarP(&repeat, "repeat", "n", 10, "Runs per query and algorithm")
	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show corpus and trie index sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd.Context(), opts)
			if err != nil {
				return err
			}
			d := svc.Dispatcher()
			fmt.Fprintf(cmd.OutOrStdout(), "Total Cities/Data: %d\n", d.Count())
			fmt.Fprintf(cmd.OutOrStdout(), "Distinct trie words: %d\n", d.Index().Len())
			return nil
		},
	}
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported algorithm selectors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, alg := range match.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), alg)
			}
		},
	}
}

// runBench issues every query through every algorithm repeat times
func runBench(svc *search.Service, queries []string, repeat int) error {
	for _, alg := range match.Algorithms() {
		for _, q := range queries {
			for i := 0; i < repeat; i++ {
				if _, err := svc.Query(q, alg); err != nil {
					return fmt.Errorf("%s %q: %w", alg, q, err)
				}
			}
		}
	}
	return nil
}

func printResult(w io.Writer, res *search.Result) {
	for _, m := range res.Matches {
		fmt.Fprintln(w, m)
	}
	fmt.Fprintf(w, "Time taken: %.2f ms, Average Time: %s\n", res.ElapsedMs(), res.Stats.Average())
}

func printStats(w io.Writer, snapshot []timing.Stats) {
	fmt.Fprintln(w, color.CyanString("=== Average Search Time ==="))
	fmt.Fprintf(w, "%-10s %8s  %s\n", "ALGORITHM", "SAMPLES", "AVERAGE")
	fmt.Fprintln(w, strings.Repeat("-", 34))

	fastest := -1
	for i, st := range snapshot {
		if st.Used() && (fastest < 0 || st.AverageMs < snapshot[fastest].AverageMs) {
			fastest = i
		}
	}
	for i, st := range snapshot {
		avg := st.Average()
		switch {
		case !st.Used():
			avg = color.YellowString(avg)
		case i == fastest:
			avg = color.GreenString(avg)
		}
		fmt.Fprintf(w, "%-10s %8d  %s\n", st.Algorithm, st.SampleCount, avg)
	}
}
