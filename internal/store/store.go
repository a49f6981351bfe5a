// Package store provides the lexicon storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rcliao/lexcount/internal/model"
)

// ErrLexiconNotFound is returned when no lexicon has the requested name.
var ErrLexiconNotFound = errors.New("lexicon not found")

// ImportParams holds parameters for storing a lexicon.
type ImportParams struct {
	Name       string
	Source     string
	Categories []model.CategoryWords
}

// LexiconInfo describes a stored lexicon.
type LexiconInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Source     string    `json:"source,omitempty"`
	Categories int       `json:"categories"`
	Words      int       `json:"words"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store defines the lexicon storage interface.
type Store interface {
	// Import stores a lexicon, replacing any lexicon with the same name.
	Import(ctx context.Context, p ImportParams) (*LexiconInfo, error)

	// Load returns a lexicon's categories in their original order.
	Load(ctx context.Context, name string) ([]model.CategoryWords, error)

	// List lists stored lexicons by name.
	List(ctx context.Context) ([]LexiconInfo, error)

	// Remove deletes a lexicon.
	Remove(ctx context.Context, name string) error

	// Close closes the store.
	Close() error
}
