// Package search dispatches place-name queries to the matchers and the trie index.
package search

import (
	"errors"
	"fmt"

	"github.com/dsjohal14/citysearch/internal/corpus"
	"github.com/dsjohal14/citysearch/internal/scope/match"
	"github.com/dsjohal14/citysearch/internal/scope/trie"
)

var (
	// ErrInvalidAlgorithm is returned for an unknown algorithm selector
	ErrInvalidAlgorithm = match.ErrInvalidAlgorithm

	// ErrCorpusNotLoaded is returned when the dispatcher has no corpus
	ErrCorpusNotLoaded = errors.New("corpus not loaded")
)

// Options tune how queries and names are compared
type Options struct {
	// StrictHashAlphabet rejects hashing queries outside a-z instead of
	// hashing them over the extended alphabet
	StrictHashAlphabet bool

	// FoldDiacritics strips combining marks from names and queries
	FoldDiacritics bool
}

// Dispatcher applies the selected algorithm across the corpus
type Dispatcher struct {
	names     []string
	folded    []string
	originals map[string][]string
	index     *trie.Index
	folder    *corpus.Folder
	opts      Options

	matcherFor func(match.Algorithm) (match.Matcher, error)
}

// NewDispatcher creates a dispatcher over c. A nil corpus yields a dispatcher
// that refuses every query with ErrCorpusNotLoaded.
func NewDispatcher(c *corpus.Corpus, index *trie.Index, opts Options) *Dispatcher {
	d := &Dispatcher{
		index:     index,
		folder:    corpus.NewFolder(opts.FoldDiacritics),
		opts:      opts,
		originals: make(map[string][]string),

		matcherFor: match.ForAlgorithm,
	}
	if c == nil {
		return d
	}

	d.names = c.Names()
	d.folded = d.folder.FoldAll(d.names)
	for i, f := range d.folded {
		d.addOriginal(f, d.names[i])
	}
	return d
}

func (d *Dispatcher) addOriginal(folded, name string) {
	for _, seen := range d.originals[folded] {
		if seen == name {
			return
		}
	}
	d.originals[folded] = append(d.originals[folded], name)
}

// Loaded reports whether the dispatcher has a corpus
func (d *Dispatcher) Loaded() bool {
	return d.names != nil
}

// Count returns the number of names in the corpus
func (d *Dispatcher) Count() int {
	return len(d.names)
}

// Index returns the trie index queried by the trie algorithm
func (d *Dispatcher) Index() *trie.Index {
	return d.index
}

// BuildIndex inserts every folded name into the trie index
func (d *Dispatcher) BuildIndex() error {
	if !d.Loaded() {
		return ErrCorpusNotLoaded
	}
	return d.index.Build(d.folded)
}

// Search returns the names matching query under alg. Scan algorithms return
// every matching corpus entry in corpus order. The trie algorithm returns the
// original spellings of the matching words in ascending folded order. An empty
// query returns no names without consulting any matcher.
func (d *Dispatcher) Search(query string, alg match.Algorithm) ([]string, error) {
	var m match.Matcher
	if alg != match.TrieAlgorithm {
		var err error
		if m, err = d.matcherFor(alg); err != nil {
			return nil, err
		}
	}
	if !d.Loaded() {
		return nil, ErrCorpusNotLoaded
	}

	pattern := d.folder.Fold(query)
	if pattern == "" {
		return []string{}, nil
	}

	if alg == match.TrieAlgorithm {
		return d.searchIndex(pattern)
	}

	if alg == match.HashingAlgorithm && d.opts.StrictHashAlphabet {
		if err := match.CheckAlphabet(pattern); err != nil {
			return nil, err
		}
	}
	return d.scan(m, pattern), nil
}

func (d *Dispatcher) scan(m match.Matcher, pattern string) []string {
	matches := []string{}
	for i, text := range d.folded {
		if m.Contains(text, pattern) {
			matches = append(matches, d.names[i])
		}
	}
	return matches
}

func (d *Dispatcher) searchIndex(prefix string) ([]string, error) {
	words, err := d.index.StartsWith(prefix)
	if err != nil {
		return nil, fmt.Errorf("prefix %q: %w", prefix, err)
	}
	matches := make([]string, 0, len(words))
	for _, w := range words {
		matches = append(matches, d.originals[w]...)
	}
	return matches, nil
}
