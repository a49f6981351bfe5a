// Package lexicon loads category dictionaries and builds the frozen word
// index used to classify tokens.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/lexcount/internal/model"
	"github.com/rcliao/lexcount/internal/tokenizer"
)

// DefaultMaxLineLength bounds a single dictionary line.
const DefaultMaxLineLength = 8192

var (
	// ErrMissingSource is returned when the dictionary cannot be opened.
	ErrMissingSource = errors.New("missing category datafile")
	// ErrLineTooLong is returned when a dictionary line exceeds the limit.
	ErrLineTooLong = errors.New("dictionary line too long")
)

// LoadOptions configures dictionary parsing.
type LoadOptions struct {
	MaxLineLength int
}

// DefaultLoadOptions returns default loading options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{MaxLineLength: DefaultMaxLineLength}
}

// Load parses dictionary lines from r. Each line is a category name
// followed by its member words, separated by runs of spaces or tabs.
// Blank lines are skipped.
func Load(r io.Reader, opts LoadOptions) ([]model.CategoryWords, error) {
	max := opts.MaxLineLength
	if max <= 0 {
		max = DefaultMaxLineLength
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(max, 4096)), max)

	var m merger
	for sc.Scan() {
		fields := strings.FieldsFunc(sc.Text(), isFieldSep)
		if len(fields) == 0 {
			continue
		}
		m.add(fields[0], fields[1:])
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, max)
		}
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return m.out, nil
}

// LoadFile opens path with OpenSource and parses it. YAML documents
// (.yaml, .yml) are decoded with DecodeYAML; everything else is read as
// dictionary lines. The file is closed before LoadFile returns.
func LoadFile(path string, opts LoadOptions) ([]model.CategoryWords, error) {
	rc, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if isYAML(path) {
		return DecodeYAML(rc)
	}
	return Load(rc, opts)
}

// \r is included so CRLF files do not leave it on the last word.
func isFieldSep(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// merger accumulates categories in first-seen order. A category named on
// more than one line keeps its first position and collects all words.
type merger struct {
	out []model.CategoryWords
	pos map[string]int
}

func (m *merger) add(name string, words []string) {
	if m.pos == nil {
		m.pos = make(map[string]int)
	}
	name = tokenizer.Lower(name)

	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = tokenizer.Lower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}

	if i, ok := m.pos[name]; ok {
		m.out[i].Words = append(m.out[i].Words, lowered...)
		return
	}
	m.pos[name] = len(m.out)
	m.out = append(m.out, model.CategoryWords{Name: name, Words: lowered})
}
