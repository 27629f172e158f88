package match

// separator joins pattern and text for the Z-array scan
const separator = "\x00"

// Z is the Z-algorithm matcher
type Z struct{}

func (Z) String() string { return "Z" }

// Contains implements Matcher
func (Z) Contains(text, pattern string) bool {
	return ZSearch(text, pattern)
}

// ZSearch reports whether pattern occurs in text using the Z-array of
// pattern + NUL + text. A match is any position past the separator whose
// Z-value reaches len(pattern). Z-values there are bounded by the remaining
// text, so the result stays exact even when NUL occurs in either input.
func ZSearch(text, pattern string) bool {
	m := len(pattern)
	if m == 0 {
		return true
	}
	if m > len(text) {
		return false
	}
	z := zArray(pattern + separator + text)
	for i := m + 1; i < len(z); i++ {
		if z[i] >= m {
			return true
		}
	}
	return false
}

// zArray returns z where z[i] is the length of the longest common prefix of
// s and s[i:]. z[0] is left at 0.
func zArray(s string) []int {
	n := len(s)
	z := make([]int, n)
	for i, l, r := 1, 0, 0; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}
