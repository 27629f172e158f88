package match

// KMP is the Knuth-Morris-Pratt matcher
type KMP struct{}

func (KMP) String() string { return "KMP" }

// Contains implements Matcher
func (KMP) Contains(text, pattern string) bool {
	return KMPSearch(text, pattern)
}

// KMPSearch reports whether pattern occurs in text. The empty pattern is
// found at offset 0 of every text.
func KMPSearch(text, pattern string) bool {
	return KMPIndex(text, pattern) >= 0
}

// KMPIndex returns the offset of the first occurrence of pattern in text, or -1
func KMPIndex(text, pattern string) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}
	lps := prefixTable(pattern)
	for i, j := 0, 0; i < n; {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				return i - m
			}
			continue
		}
		if j > 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return -1
}

// prefixTable computes lps[i], the length of the longest proper prefix of
// pattern[:i+1] that is also its suffix.
func prefixTable(pattern string) []int {
	lps := make([]int, len(pattern))
	for i, length := 1, 0; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length > 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}
