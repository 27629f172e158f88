package trie

import (
	"errors"
	"sync"
)

var (
	// ErrNotReady is returned by prefix queries issued before Build completes
	ErrNotReady = errors.New("trie index not ready")

	// ErrAlreadyBuilt is returned by a second call to Build
	ErrAlreadyBuilt = errors.New("trie index already built")
)

// State is the readiness of an Index
type State int

// Index states
const (
	NotReady State = iota
	Building
	Ready
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Ready:
		return "ready"
	default:
		return "not-ready"
	}
}

// Index guards a Trie with an explicit readiness state.
// Build runs exactly once; queries fail with ErrNotReady until it finishes.
type Index struct {
	mu    sync.RWMutex
	state State
	trie  *Trie
}

// NewIndex creates an index in the not-ready state
func NewIndex() *Index {
	return &Index{
		trie: New(),
	}
}

// Build inserts every word and marks the index ready
func (x *Index) Build(words []string) error {
	x.mu.Lock()
	if x.state != NotReady {
		x.mu.Unlock()
		return ErrAlreadyBuilt
	}
	x.state = Building
	x.mu.Unlock()

	t := New()
	for _, w := range words {
		t.Insert(w)
	}

	x.mu.Lock()
	x.trie = t
	x.state = Ready
	x.mu.Unlock()
	return nil
}

// State returns the current readiness state
func (x *Index) State() State {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.state
}

// Ready reports whether Build has completed
func (x *Index) Ready() bool {
	return x.State() == Ready
}

// Len returns the number of distinct words, or 0 before the index is ready
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.state != Ready {
		return 0
	}
	return x.trie.Len()
}

// StartsWith returns the stored words with the given prefix
func (x *Index) StartsWith(prefix string) ([]string, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.state != Ready {
		return nil, ErrNotReady
	}
	return x.trie.StartsWith(prefix), nil
}
