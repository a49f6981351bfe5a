package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string `json:"db_path"`
	DBSizeBytes   int64  `json:"db_size_bytes"`
	Lexicons      int    `json:"lexicons"`
	Categories    int    `json:"categories"`
	Words         int    `json:"words"`
	DistinctWords int    `json:"distinct_words"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM lexicons),
		       (SELECT COUNT(*) FROM categories),
		       (SELECT COUNT(*) FROM category_words),
		       (SELECT COUNT(DISTINCT word) FROM category_words)`).
		Scan(&st.Lexicons, &st.Categories, &st.Words, &st.DistinctWords)
	if err != nil {
		return st, err
	}
	return st, nil
}
