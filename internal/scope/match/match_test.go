package match

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matchers = []Matcher{KMP{}, Z{}, Hashing{}}

func TestMatchersAgreeOnCases(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    bool
	}{
		{"empty pattern", "springfield", "", true},
		{"empty pattern empty text", "", "", true},
		{"empty text", "", "a", false},
		{"prefix", "springfield", "spring", true},
		{"suffix", "springfield", "field", true},
		{"middle", "springfield", "ngfi", true},
		{"whole text", "cart", "cart", true},
		{"absent", "shelbyville", "spring", false},
		{"pattern longer than text", "car", "cart", false},
		{"repetitive fallback", "aaaaab", "aaab", true},
		{"overlapping prefix", "abababca", "ababca", true},
		{"near miss", "abababab", "ababac", false},
		{"with space", "spring valley", "g v", true},
		{"digits", "route 66 junction", "66", true},
		{"utf8", "são paulo", "ão p", true},
		{"nul in text", "ab\x00cd", "\x00c", true},
		{"nul only in pattern", "abcd", "b\x00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range matchers {
				assert.Equal(t, tt.want, m.Contains(tt.text, tt.pattern), "%s(%q, %q)", m, tt.text, tt.pattern)
			}
		})
	}
}

func TestMatchersAgreeWithContains(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := "ab c\x00"
	randString := func(max int) string {
		var b strings.Builder
		for n := rng.Intn(max + 1); n > 0; n-- {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 5000; i++ {
		text, pattern := randString(16), randString(5)
		want := strings.Contains(text, pattern)
		require.Equal(t, want, KMPSearch(text, pattern), "kmp(%q, %q)", text, pattern)
		require.Equal(t, want, ZSearch(text, pattern), "z(%q, %q)", text, pattern)
		require.Equal(t, want, HashingSearch(text, pattern), "hashing(%q, %q)", text, pattern)
		require.Equal(t, strings.Index(text, pattern), KMPIndex(text, pattern), "index(%q, %q)", text, pattern)
	}
}

func TestPrefixTable(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 2, 0}, prefixTable("ababc"))
	assert.Equal(t, []int{0, 1, 2, 3}, prefixTable("aaaa"))
	assert.Equal(t, []int{0, 1, 0, 1, 2, 2, 3}, prefixTable("aabaaab"))
	assert.Empty(t, prefixTable(""))
}

func TestZArray(t *testing.T) {
	assert.Equal(t, []int{0, 1, 0, 0, 5, 1, 0, 0, 1}, zArray("aabxaabxa"))
	assert.Equal(t, []int{0, 3, 2, 1}, zArray("aaaa"))
}

func TestHashWeights(t *testing.T) {
	for c := 0; c < 256; c++ {
		assert.NotZero(t, weight(byte(c)))
	}
	assert.Equal(t, uint64(1), hashBaseInverse*hashBase%hashModulus)
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"kmp", KMPAlgorithm, false},
		{" Z ", ZAlgorithm, false},
		{"HASHING", HashingAlgorithm, false},
		{"trie", TrieAlgorithm, false},
		{"boyer-moore", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidAlgorithm))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForAlgorithm(t *testing.T) {
	m, err := ForAlgorithm(KMPAlgorithm)
	require.NoError(t, err)
	assert.Equal(t, "KMP", m.String())

	m, err = ForAlgorithm(HashingAlgorithm)
	require.NoError(t, err)
	assert.Equal(t, "Hashing", m.String())

	_, err = ForAlgorithm(TrieAlgorithm)
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)
}

func TestAlgorithmsOrder(t *testing.T) {
	got := Algorithms()
	assert.Equal(t, []Algorithm{KMPAlgorithm, ZAlgorithm, HashingAlgorithm, TrieAlgorithm}, got)

	got[0] = "mutated"
	assert.Equal(t, KMPAlgorithm, Algorithms()[0])
}

func TestCheckAlphabet(t *testing.T) {
	assert.NoError(t, CheckAlphabet("springfield"))
	assert.NoError(t, CheckAlphabet(""))
	assert.ErrorIs(t, CheckAlphabet("spring valley"), ErrUnsupportedCharacter)
	assert.ErrorIs(t, CheckAlphabet("Spring"), ErrUnsupportedCharacter)
}
