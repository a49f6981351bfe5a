package lexicon

import (
	"slices"

	"github.com/rcliao/lexcount/internal/model"
	"github.com/rcliao/lexcount/internal/tokenizer"
)

// Entry is one deduplicated dictionary word and the categories that list
// it. Categories holds indexes into Index.Categories; a word listed twice
// under the same category appears twice.
type Entry struct {
	ID         int    `json:"id"`
	Word       string `json:"word"`
	Prefix     string `json:"prefix"`
	Wildcard   bool   `json:"wildcard"`
	Categories []int  `json:"categories"`
}

// Index is the frozen word index. It is safe for concurrent readers once
// Build returns.
type Index struct {
	categories []string
	entries    []*Entry
	trie       *trie
}

// IndexStats summarizes an index.
type IndexStats struct {
	Categories      int `json:"categories"`
	Entries         int `json:"entries"`
	WildcardEntries int `json:"wildcard_entries"`
	Memberships     int `json:"memberships"`
}

// Build merges per-category word lists into one index. Category order is
// preserved; entries are sorted with Compare and numbered in that order.
func Build(cats []model.CategoryWords) *Index {
	idx := &Index{
		categories: make([]string, 0, len(cats)),
		trie:       newTrie(),
	}

	byWord := make(map[string]*Entry)
	for ci, c := range cats {
		idx.categories = append(idx.categories, c.Name)
		for _, w := range c.Words {
			w = tokenizer.Lower(w)
			e, ok := byWord[w]
			if !ok {
				prefix, wild := literalPrefix(w)
				e = &Entry{Word: w, Prefix: prefix, Wildcard: wild}
				byWord[w] = e
				idx.entries = append(idx.entries, e)
			}
			e.Categories = append(e.Categories, ci)
		}
	}

	slices.SortFunc(idx.entries, func(a, b *Entry) int {
		return Compare(a.Word, b.Word)
	})
	for i, e := range idx.entries {
		e.ID = i
		idx.trie.insert(e)
	}
	return idx
}

// Find looks up a normalized key. An exact entry wins over wildcard
// entries; among wildcard entries the longest matching prefix wins. The
// empty key never matches.
func (x *Index) Find(key string) (*Entry, bool) {
	if key == "" {
		return nil, false
	}
	e := x.trie.find(key)
	return e, e != nil
}

// Categories returns category names in load order.
func (x *Index) Categories() []string {
	return x.categories
}

// Entries returns every entry in Compare order.
func (x *Index) Entries() []*Entry {
	return x.entries
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return len(x.entries)
}

// CategoryNames resolves an entry's category references to names.
func (x *Index) CategoryNames(e *Entry) []string {
	names := make([]string, len(e.Categories))
	for i, ci := range e.Categories {
		names[i] = x.categories[ci]
	}
	return names
}

// Stats returns counts describing the index.
func (x *Index) Stats() IndexStats {
	st := IndexStats{
		Categories: len(x.categories),
		Entries:    len(x.entries),
	}
	for _, e := range x.entries {
		if e.Wildcard {
			st.WildcardEntries++
		}
		st.Memberships += len(e.Categories)
	}
	return st
}
