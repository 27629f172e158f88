// Package corpus loads the place-name corpus searched by the dispatcher.
package corpus

import (
	"context"
	"errors"
)

// ErrLoad wraps every failure to read or parse a corpus source
var ErrLoad = errors.New("corpus load failed")

// Group is one region and its place names, in source order
type Group struct {
	Name  string   `json:"name"`
	Names []string `json:"cities"`
}

// Corpus is the immutable, ordered collection of groups
type Corpus struct {
	Groups []Group
}

// New creates a corpus from groups
func New(groups ...Group) *Corpus {
	return &Corpus{Groups: groups}
}

// FromNames creates a single-group corpus, convenient for tests and tooling
func FromNames(names ...string) *Corpus {
	return New(Group{Names: names})
}

// Names returns every place name flattened across groups, in order
func (c *Corpus) Names() []string {
	out := make([]string, 0, c.Count())
	for _, g := range c.Groups {
		out = append(out, g.Names...)
	}
	return out
}

// Count returns the total number of place names
func (c *Corpus) Count() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Names)
	}
	return n
}

// Source provides a corpus from an external location
type Source interface {
	Name() string
	Load(ctx context.Context) (*Corpus, error)
}
