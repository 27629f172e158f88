package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document is the on-disk shape: { "states": [ { "name": ..., "cities": [...] } ] }
type document struct {
	States *[]struct {
		Name   string   `json:"name"`
		State  string   `json:"state"`
		Cities []string `json:"cities"`
	} `json:"states"`
}

// FileSource reads a JSON corpus document from disk
type FileSource struct {
	path string
}

// NewFileSource creates a source for the document at path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source identifier
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Load reads and parses the document
func (s *FileSource) Load(_ context.Context) (*Corpus, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses a corpus document from r
func Decode(r io.Reader) (*Corpus, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrLoad, err)
	}
	if doc.States == nil {
		return nil, fmt.Errorf("%w: missing \"states\"", ErrLoad)
	}

	c := &Corpus{Groups: make([]Group, 0, len(*doc.States))}
	for _, st := range *doc.States {
		name := st.Name
		if name == "" {
			name = st.State
		}
		c.Groups = append(c.Groups, Group{Name: name, Names: st.Cities})
	}
	return c, nil
}
