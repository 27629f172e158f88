// Package match provides the exact substring matchers used for place-name lookup.
package match

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects a search strategy
type Algorithm string

// Supported algorithms
const (
	KMPAlgorithm     Algorithm = "kmp"
	ZAlgorithm       Algorithm = "z"
	HashingAlgorithm Algorithm = "hashing"
	TrieAlgorithm    Algorithm = "trie"
)

var (
	// ErrInvalidAlgorithm is returned for a selector outside the supported set
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrUnsupportedCharacter is returned when a pattern falls outside the
	// rolling-hash alphabet and strict checking is enabled
	ErrUnsupportedCharacter = errors.New("unsupported character")
)

var algorithms = []Algorithm{KMPAlgorithm, ZAlgorithm, HashingAlgorithm, TrieAlgorithm}

// Algorithms returns every supported algorithm in display order
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ParseAlgorithm resolves a selector, ignoring case and surrounding whitespace
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}

// Matcher reports whether a pattern occurs in a text
type Matcher interface {
	Contains(text, pattern string) bool
	String() string
}

// ForAlgorithm returns the matcher backing a scan-based algorithm.
// The trie algorithm has no matcher and yields ErrInvalidAlgorithm.
func ForAlgorithm(a Algorithm) (Matcher, error) {
	switch a {
	case KMPAlgorithm:
		return KMP{}, nil
	case ZAlgorithm:
		return Z{}, nil
	case HashingAlgorithm:
		return Hashing{}, nil
	}
	return nil, fmt.Errorf("%w: no matcher for %q", ErrInvalidAlgorithm, a)
}

// CheckAlphabet verifies s only holds lower-case ASCII letters
func CheckAlphabet(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || c > 'z' {
			return fmt.Errorf("%w: %q at offset %d", ErrUnsupportedCharacter, c, i)
		}
	}
	return nil
}
