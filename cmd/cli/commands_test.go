package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsjohal14/citysearch/internal/scope/match"
	"github.com/dsjohal14/citysearch/internal/scope/timing"
	"github.com/fatih/color"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	data := `{"states":[{"name":"Illinois","cities":["Springfield","Spring Valley"]},{"name":"Kentucky","cities":["Shelbyville"]}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	path := writeCorpus(t)

	for _, alg := range []string{"kmp", "z", "hashing", "trie"} {
		t.Run(alg, func(t *testing.T) {
			out, err := run(t, "query", "--corpus", path, "--algorithm", alg, "Spring")
			if err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if !strings.Contains(out, "Springfield") || !strings.Contains(out, "Spring Valley") {
				t.Errorf("expected both spring names, got %q", out)
			}
			if strings.Contains(out, "Shelbyville") {
				t.Errorf("unexpected match in %q", out)
			}
			if !strings.Contains(out, "Average Time:") {
				t.Errorf("expected timing line, got %q", out)
			}
		})
	}
}

func TestQueryCommandErrors(t *testing.T) {
	path := writeCorpus(t)

	if _, err := run(t, "query", "--corpus", path, "--algorithm", "soundex", "spring"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	if _, err := run(t, "query", "--corpus", filepath.Join(t.TempDir(), "missing.json"), "spring"); err == nil {
		t.Error("expected error for missing corpus")
	}
}

func TestBenchCommand(t *testing.T) {
	path := writeCorpus(t)

	out, err := run(t, "bench", "--corpus", path, "--repeat", "3", "spring", "shel")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	for _, alg := range match.Algorithms() {
		if !strings.Contains(out, string(alg)) {
			t.Errorf("expected %s row in %q", alg, out)
		}
	}
	if strings.Contains(out, timing.NotYetUsed) {
		t.Errorf("every algorithm should have samples, got %q", out)
	}
	if strings.Count(out, "       6  ") != 4 {
		t.Errorf("expected 6 samples per algorithm, got %q", out)
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats", "--corpus", writeCorpus(t))
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "Total Cities/Data: 3") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := run(t, "algorithms")
	if err != nil {
		t.Fatalf("algorithms failed: %v", err)
	}
	if out != "kmp\nz\nhashing\ntrie\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPrintStatsUnused(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	printStats(&buf, timing.NewAggregator().Snapshot())

	if strings.Count(buf.String(), timing.NotYetUsed) != 4 {
		t.Errorf("expected every algorithm unused, got %q", buf.String())
	}
}

func TestLogsGoToStderr(t *testing.T) {
	color.NoColor = true
	path := writeCorpus(t)

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"query", "--corpus", path, "--log-level", "debug", "spring"})
	if err := root.Execute(); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if strings.Contains(out.String(), "corpus ready") {
		t.Errorf("log line leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "corpus ready") {
		t.Errorf("expected debug log on stderr, got %q", errOut.String())
	}
}
