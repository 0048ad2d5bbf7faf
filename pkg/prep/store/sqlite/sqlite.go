// Package sqlite persists pipeline artifacts in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/bow"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/store"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/vocab"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and the schema
// initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist. A term's row ID is its
// vocabulary ID; corpus rows are keyed by document position.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS terms (
	id INTEGER PRIMARY KEY,
	token TEXT UNIQUE NOT NULL,
	df INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS corpus_docs (
	doc_idx INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS corpus_entries (
	doc_idx INTEGER NOT NULL,
	term_id INTEGER NOT NULL,
	count INTEGER NOT NULL,
	UNIQUE(doc_idx, term_id),
	FOREIGN KEY(doc_idx) REFERENCES corpus_docs(doc_idx) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_corpus_entries_doc ON corpus_entries(doc_idx);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveVocabulary replaces the stored vocabulary.
func (s *sqliteStore) SaveVocabulary(ctx context.Context, v *vocab.Vocabulary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM terms"); err != nil {
		return err
	}

	insert, err := tx.PrepareContext(ctx, "INSERT INTO terms (id, token, df) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insert.Close()

	for id, token := range v.Tokens() {
		if _, err := insert.ExecContext(ctx, id, token, v.DocFreq(id)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadVocabulary reconstructs the stored vocabulary, IDs intact.
func (s *sqliteStore) LoadVocabulary(ctx context.Context) (*vocab.Vocabulary, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT token, df FROM terms ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	var dfs []int64
	for rows.Next() {
		var token string
		var df int64
		if err := rows.Scan(&token, &df); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		dfs = append(dfs, df)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vocab.FromTable(tokens, dfs)
}

// SaveCorpus replaces the stored corpus. Empty documents keep their
// position through the corpus_docs table.
func (s *sqliteStore) SaveCorpus(ctx context.Context, c bow.Corpus) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM corpus_entries"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM corpus_docs"); err != nil {
		return err
	}

	insertDoc, err := tx.PrepareContext(ctx, "INSERT INTO corpus_docs (doc_idx) VALUES (?)")
	if err != nil {
		return err
	}
	defer insertDoc.Close()
	insertEntry, err := tx.PrepareContext(ctx, "INSERT INTO corpus_entries (doc_idx, term_id, count) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertEntry.Close()

	for idx, doc := range c {
		if _, err := insertDoc.ExecContext(ctx, idx); err != nil {
			return err
		}
		for _, e := range doc {
			if _, err := insertEntry.ExecContext(ctx, idx, e.ID, e.Count); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadCorpus reconstructs the stored corpus in document order.
func (s *sqliteStore) LoadCorpus(ctx context.Context) (bow.Corpus, error) {
	var nDocs int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM corpus_docs").Scan(&nDocs); err != nil {
		return nil, err
	}
	if nDocs == 0 {
		return nil, nil
	}

	c := make(bow.Corpus, nDocs)
	for i := range c {
		c[i] = bow.Document{}
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT doc_idx, term_id, count FROM corpus_entries ORDER BY doc_idx, term_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var docIdx, termID, count int
		if err := rows.Scan(&docIdx, &termID, &count); err != nil {
			return nil, err
		}
		if docIdx < 0 || docIdx >= nDocs {
			continue
		}
		c[docIdx] = append(c[docIdx], bow.Entry{ID: termID, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return c, nil
}
