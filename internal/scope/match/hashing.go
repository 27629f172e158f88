package match

const (
	hashBase    = 31
	hashModulus = 1_000_000_009
)

// hashBaseInverse is 31^-1 mod hashModulus, used to shift the window right.
var hashBaseInverse = powMod(hashBase, hashModulus-2)

// Hashing is the rolling-hash (Rabin-Karp) matcher
type Hashing struct{}

func (Hashing) String() string { return "Hashing" }

// Contains implements Matcher
func (Hashing) Contains(text, pattern string) bool {
	return HashingSearch(text, pattern)
}

// HashingSearch reports whether pattern occurs in text using a polynomial
// rolling hash, base 31 modulo 1,000,000,009, where character i of a window
// is weighted by 31^i. Lower-case ASCII letters weigh 1..26 by alphabet
// offset; any other byte b weighs 27+b, so spaces, digits, punctuation and
// UTF-8 continuation bytes hash without colliding with letters. Every hash hit
// is verified literally.
func HashingSearch(text, pattern string) bool {
	m, n := len(pattern), len(text)
	if m == 0 {
		return true
	}
	if m > n {
		return false
	}

	var want, have uint64
	pow := uint64(1)
	for i := 0; i < m; i++ {
		want = (want + weight(pattern[i])*pow) % hashModulus
		have = (have + weight(text[i])*pow) % hashModulus
		if i < m-1 {
			pow = pow * hashBase % hashModulus
		}
	}

	for i := 0; i+m <= n; i++ {
		if have == want && text[i:i+m] == pattern {
			return true
		}
		if i+m < n {
			have = (have + hashModulus - weight(text[i])) % hashModulus
			have = have * hashBaseInverse % hashModulus
			have = (have + weight(text[i+m])*pow) % hashModulus
		}
	}
	return false
}

func weight(c byte) uint64 {
	if c >= 'a' && c <= 'z' {
		return uint64(c-'a') + 1
	}
	return 27 + uint64(c)
}

func powMod(b, e uint64) uint64 {
	result := uint64(1)
	b %= hashModulus
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result * b % hashModulus
		}
		b = b * b % hashModulus
	}
	return result
}
