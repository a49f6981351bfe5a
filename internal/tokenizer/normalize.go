package tokenizer

import "github.com/rcliao/lexcount/internal/model"

// Boundary is the segment-boundary byte (ASCII File Separator). A token
// containing it triggers a flush once it has been classified.
const Boundary byte = 0x1c

// IsSeparator reports whether c ends a token.
func IsSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// Lower folds ASCII upper-case letters. Other bytes are left alone, and s
// is returned as-is when there is nothing to fold.
func Lower(s string) string {
	i := 0
	for i < len(s) && !(s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Scan updates st with the statistics carried by one raw token: the word
// count goes up once if the token holds any alphanumeric byte, and every
// '.', '?' and '!' is counted.
func Scan(raw string, st *model.RunStats) {
	seen := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !seen && isAlnum(c) {
			st.Words++
			seen = true
		}
		switch c {
		case '.':
			st.Periods++
		case '?':
			st.Questions++
		case '!':
			st.Exclamations++
		}
	}
}

// Normalize turns a raw token into its lookup key. When st is non-nil the
// token's statistics are recorded first. The key is lowercased, trimmed of
// non-alphabetic bytes at both ends and of any leading non-alphanumeric
// bytes; it may be empty.
func Normalize(raw string, st *model.RunStats) string {
	if st != nil {
		Scan(raw, st)
	}

	start, end := 0, len(raw)
	for start < end && !isAlpha(raw[start]) {
		start++
	}
	for end > start && !isAlpha(raw[end-1]) {
		end--
	}
	for start < end && !isAlnum(raw[start]) {
		start++
	}
	return Lower(raw[start:end])
}
