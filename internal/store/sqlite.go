package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/lexcount/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS lexicons (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		source      TEXT,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS categories (
		lexicon_id  TEXT NOT NULL REFERENCES lexicons(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		name        TEXT NOT NULL,
		PRIMARY KEY (lexicon_id, seq)
	);

	CREATE TABLE IF NOT EXISTS category_words (
		lexicon_id    TEXT NOT NULL,
		category_seq  INTEGER NOT NULL,
		seq           INTEGER NOT NULL,
		word          TEXT NOT NULL,
		PRIMARY KEY (lexicon_id, category_seq, seq),
		FOREIGN KEY (lexicon_id, category_seq) REFERENCES categories(lexicon_id, seq) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_category_words_word ON category_words(word);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Import(ctx context.Context, p ImportParams) (*LexiconInfo, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("lexicon name is required")
	}
	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lexicons WHERE name = ?`, p.Name); err != nil {
		return nil, fmt.Errorf("replace lexicon: %w", err)
	}

	var source *string
	if p.Source != "" {
		source = &p.Source
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO lexicons (id, name, source, created_at) VALUES (?, ?, ?, ?)`,
		id, p.Name, source, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert lexicon: %w", err)
	}

	catStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO categories (lexicon_id, seq, name) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer catStmt.Close()

	wordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO category_words (lexicon_id, category_seq, seq, word) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer wordStmt.Close()

	words := 0
	for i, c := range p.Categories {
		if _, err := catStmt.ExecContext(ctx, id, i, c.Name); err != nil {
			return nil, fmt.Errorf("insert category %q: %w", c.Name, err)
		}
		for j, w := range c.Words {
			if _, err := wordStmt.ExecContext(ctx, id, i, j, w); err != nil {
				return nil, fmt.Errorf("insert word %q: %w", w, err)
			}
			words++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &LexiconInfo{
		ID:         id,
		Name:       p.Name,
		Source:     p.Source,
		Categories: len(p.Categories),
		Words:      words,
		CreatedAt:  now.Truncate(time.Second),
	}, nil
}

func (s *SQLiteStore) lexiconID(ctx context.Context, name string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM lexicons WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrLexiconNotFound, name)
	}
	return id, err
}

func (s *SQLiteStore) Load(ctx context.Context, name string) ([]model.CategoryWords, error) {
	id, err := s.lexiconID(ctx, name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM categories WHERE lexicon_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []model.CategoryWords
	for rows.Next() {
		var c model.CategoryWords
		if err := rows.Scan(&c.Name); err != nil {
			return nil, err
		}
		c.Words = []string{}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	wrows, err := s.db.QueryContext(ctx,
		`SELECT category_seq, word FROM category_words WHERE lexicon_id = ? ORDER BY category_seq, seq`, id)
	if err != nil {
		return nil, err
	}
	defer wrows.Close()

	for wrows.Next() {
		var seq int
		var word string
		if err := wrows.Scan(&seq, &word); err != nil {
			return nil, err
		}
		if seq < 0 || seq >= len(cats) {
			return nil, fmt.Errorf("lexicon %s: word %q references missing category %d", name, word, seq)
		}
		cats[seq].Words = append(cats[seq].Words, word)
	}
	return cats, wrows.Err()
}

func (s *SQLiteStore) List(ctx context.Context) ([]LexiconInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.name, l.source, l.created_at,
		       (SELECT COUNT(*) FROM categories c WHERE c.lexicon_id = l.id),
		       (SELECT COUNT(*) FROM category_words w WHERE w.lexicon_id = l.id)
		FROM lexicons l ORDER BY l.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LexiconInfo
	for rows.Next() {
		var info LexiconInfo
		var source sql.NullString
		var createdAt string
		if err := rows.Scan(&info.ID, &info.Name, &source, &createdAt, &info.Categories, &info.Words); err != nil {
			return nil, err
		}
		info.Source = source.String
		info.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, info)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lexicons WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrLexiconNotFound, name)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
