// Package model defines the core lexicon and segment data types.
package model

// CategoryWords is one dictionary line after loading: a lowercased
// category name and its member words in source order.
type CategoryWords struct {
	Name  string   `json:"name" yaml:"name"`
	Words []string `json:"words" yaml:"words"`
}

// Category is a named group of words with a running hit count.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RunStats holds the per-segment text statistics.
type RunStats struct {
	Words        int `json:"words"`
	Periods      int `json:"periods"`
	Questions    int `json:"question_marks"`
	Exclamations int `json:"exclamations"`
}

// Reset zeroes every counter.
func (s *RunStats) Reset() {
	*s = RunStats{}
}

// StatFields are the fixed leading columns of every record, in order.
var StatFields = []string{"words", "periods", "question_marks", "exclamations"}

// Values returns the statistics in StatFields order.
func (s RunStats) Values() []int {
	return []int{s.Words, s.Periods, s.Questions, s.Exclamations}
}

// Record is one emitted segment: the statistics plus every category
// count at flush time, in dictionary load order.
type Record struct {
	Seq    int      `json:"seq"`
	Stats  RunStats `json:"stats"`
	Counts []int    `json:"counts"`
}
