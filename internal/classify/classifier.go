// Package classify matches normalized tokens against a lexicon index and
// accumulates per-segment category counts.
package classify

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rcliao/lexcount/internal/lexicon"
	"github.com/rcliao/lexcount/internal/model"
	"github.com/rcliao/lexcount/internal/tokenizer"
)

// Classifier holds the mutable state of a run over a frozen index:
// category counts, per-entry hit counts and text statistics. It is not
// safe for concurrent use; the index it reads may be shared.
type Classifier struct {
	index  *lexicon.Index
	counts []int
	hits   []int
	// touched records entry IDs hit since the last reset.
	touched *roaring.Bitmap
	stats   model.RunStats
}

// New returns a Classifier with every counter at zero.
func New(idx *lexicon.Index) *Classifier {
	return &Classifier{
		index:   idx,
		counts:  make([]int, len(idx.Categories())),
		hits:    make([]int, idx.Len()),
		touched: roaring.New(),
	}
}

// Observe normalizes a raw token, recording its statistics, and
// classifies the resulting key.
func (c *Classifier) Observe(raw string) (*lexicon.Entry, bool) {
	return c.Classify(tokenizer.Normalize(raw, &c.stats))
}

// Classify looks up a normalized key. On a match the entry's hit count
// and every category it references go up by one. An empty or unknown key
// changes nothing.
func (c *Classifier) Classify(key string) (*lexicon.Entry, bool) {
	e, ok := c.index.Find(key)
	if !ok {
		return nil, false
	}
	c.hits[e.ID]++
	c.touched.Add(uint32(e.ID))
	for _, ci := range e.Categories {
		c.counts[ci]++
	}
	return e, true
}

// Index returns the index being classified against.
func (c *Classifier) Index() *lexicon.Index {
	return c.index
}

// Categories returns category names in load order.
func (c *Classifier) Categories() []string {
	return c.index.Categories()
}

// Stats returns the current text statistics.
func (c *Classifier) Stats() model.RunStats {
	return c.stats
}

// Count returns the running count of category i.
func (c *Classifier) Count(i int) int {
	return c.counts[i]
}

// Hits returns how often e has matched since the last reset.
func (c *Classifier) Hits(e *lexicon.Entry) int {
	return c.hits[e.ID]
}

// Snapshot copies the current statistics and category counts.
func (c *Classifier) Snapshot() model.Record {
	counts := make([]int, len(c.counts))
	copy(counts, c.counts)
	return model.Record{Stats: c.stats, Counts: counts}
}

// Reset zeroes the statistics, every category count and every entry hit
// count.
func (c *Classifier) Reset() {
	clear(c.counts)
	c.stats.Reset()
	it := c.touched.Iterator()
	for it.HasNext() {
		c.hits[it.Next()] = 0
	}
	c.touched.Clear()
}
