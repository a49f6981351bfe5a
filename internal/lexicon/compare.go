package lexicon

import "cmp"

// Wildcard marks a dictionary word as a prefix: "griev*" matches any
// token that starts with "griev".
const Wildcard = '*'

// Compare orders dictionary words byte by byte with the wildcard marker
// ranked below every other byte, so a wildcard entry sorts ahead of every
// word that extends its prefix. It is a total order.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return cmp.Compare(rank(a[i]), rank(b[i]))
		}
	}
	return cmp.Compare(len(a), len(b))
}

func rank(c byte) int {
	if c == Wildcard {
		return -1
	}
	return int(c)
}

// Match reports whether a and b are equal under wildcard semantics: they
// agree byte for byte up to the first position where either holds the
// wildcard marker. Without a marker on either side this is plain equality.
func Match(a, b string) bool {
	for i := 0; ; i++ {
		if i < len(a) && a[i] == Wildcard || i < len(b) && b[i] == Wildcard {
			return true
		}
		if i == len(a) || i == len(b) {
			return len(a) == len(b)
		}
		if a[i] != b[i] {
			return false
		}
	}
}

// literalPrefix returns the part of word before the first wildcard marker
// and whether a marker was present.
func literalPrefix(word string) (string, bool) {
	for i := 0; i < len(word); i++ {
		if word[i] == Wildcard {
			return word[:i], true
		}
	}
	return word, false
}
