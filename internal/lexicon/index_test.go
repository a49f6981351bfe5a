package lexicon

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/lexcount/internal/model"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abc", 0},
		{"abc", "abd", -1},
		{"ab", "abc", -1},
		{"ab*", "abc", -1},
		{"ab*", "ab", 1},
		{"ab*", "ab!", -1},
		{"ab*", "ab*", 0},
		{"b", "a*", 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"griev*", "grieving", true},
		{"griev*", "grieved", true},
		{"griev*", "griev", true},
		{"griev*", "grief", false},
		{"griev*", "grie", false},
		{"love", "love", true},
		{"love", "lover", false},
		{"", "", true},
		{"*", "anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.a, tt.b))
			assert.Equal(t, tt.want, Match(tt.b, tt.a))
		})
	}
}

func TestBuild_DeduplicatesAcrossCategories(t *testing.T) {
	idx := Build([]model.CategoryWords{
		{Name: "joy", Words: []string{"love", "happy"}},
		{Name: "romance", Words: []string{"love", "Love"}},
	})

	require.Equal(t, 2, idx.Len())
	e, ok := idx.Find("love")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 1}, e.Categories)
	assert.Equal(t, []string{"joy", "romance", "romance"}, idx.CategoryNames(e))
}

func TestBuild_EntriesSorted(t *testing.T) {
	idx := Build([]model.CategoryWords{
		{Name: "a", Words: []string{"zebra", "griev*", "grieve", "apple", "grief"}},
	})

	var words []string
	for i, e := range idx.Entries() {
		assert.Equal(t, i, e.ID)
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"apple", "grief", "griev*", "grieve", "zebra"}, words)
}

func TestFind_Wildcards(t *testing.T) {
	idx := Build([]model.CategoryWords{
		{Name: "sad", Words: []string{"griev*", "grief", "gr*", "grieved"}},
		{Name: "other", Words: []string{"grievance"}},
	})

	tests := []struct {
		key  string
		want string
	}{
		{"grieving", "griev*"},
		{"griev", "griev*"},
		{"grieved", "grieved"},
		{"grievance", "grievance"},
		{"grief", "grief"},
		{"griefs", "gr*"},
		{"great", "gr*"},
		{"gr", "gr*"},
		{"g", ""},
		{"", ""},
		{"apple", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, ok := idx.Find(tt.key)
			if tt.want == "" {
				assert.False(t, ok)
				assert.Nil(t, e)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, e.Word)
		})
	}
}

func TestFind_WildcardsBetweenOtherWildcards(t *testing.T) {
	// Several wildcard prefixes that sort around each other; every
	// extension of each prefix must still be found.
	words := []string{"ab*", "abc*", "abd*", "abca", "b*", "ba*", "bab"}
	idx := Build([]model.CategoryWords{{Name: "c", Words: words}})

	keys := []string{"ab", "abz", "abc", "abcz", "abca", "abd", "abdx", "b", "bz", "ba", "bab", "babe", "c", "a"}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			want := linearFind(words, key)
			e, ok := idx.Find(key)
			if want == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, want, e.Word)
		})
	}
}

// linearFind is the reference lookup: an exact word first, otherwise the
// matching wildcard word with the longest prefix.
func linearFind(words []string, key string) string {
	if slices.Contains(words, key) {
		return key
	}
	best, bestLen := "", -1
	for _, w := range words {
		prefix, wild := literalPrefix(w)
		if wild && Match(w, key) && len(prefix) > bestLen {
			best, bestLen = w, len(prefix)
		}
	}
	return best
}

func TestStats(t *testing.T) {
	idx := Build([]model.CategoryWords{
		{Name: "joy", Words: []string{"love", "glad*"}},
		{Name: "romance", Words: []string{"love"}},
		{Name: "empty", Words: nil},
	})
	assert.Equal(t, IndexStats{Categories: 3, Entries: 2, WildcardEntries: 1, Memberships: 3}, idx.Stats())
	assert.Equal(t, []string{"joy", "romance", "empty"}, idx.Categories())
}
