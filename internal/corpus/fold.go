package corpus

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder normalizes names and queries to the form the matchers compare
type Folder struct {
	stripMarks bool
}

// NewFolder creates a folder. With stripMarks, combining marks are removed
// so "São" folds to "sao".
func NewFolder(stripMarks bool) *Folder {
	return &Folder{stripMarks: stripMarks}
}

// Fold lower-cases s and optionally strips diacritics. Invalid UTF-8 is
// replaced with U+FFFD so the folded form survives a rune-wise round trip.
func (f *Folder) Fold(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	// cases.Caser is stateful, so one is built per call.
	lower := cases.Lower(language.Und).String(s)
	if !f.stripMarks {
		return lower
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}

// FoldAll folds every name, preserving order
func (f *Folder) FoldAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = f.Fold(n)
	}
	return out
}
