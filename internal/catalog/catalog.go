// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records converted level sets in a local SQLite database so
// earlier conversions can be listed and re-emitted without the source file.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/levelconv/pkg/types"
)

const dbFile = "levels.db"

// ErrNotFound is returned when a level set id is not in the catalog.
var ErrNotFound = errors.New("level set not found")

// Catalog manages the catalog SQLite database.
type Catalog struct {
	db  *sql.DB
	now func() time.Time
}

// Entry summarizes one stored level set.
type Entry struct {
	ID         int64     `json:"id" yaml:"id"`
	Source     string    `json:"source" yaml:"source"`
	Author     string    `json:"author" yaml:"author"`
	Title      string    `json:"title" yaml:"title"`
	LevelCount int       `json:"level_count" yaml:"level_count"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Open opens or creates the catalog database at dir/levels.db, creating dir
// and the schema if needed.
func Open(dir string) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Catalog{db: db, now: time.Now}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS level_sets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			author TEXT NOT NULL,
			title TEXT NOT NULL,
			level_count INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS levels (
			set_id INTEGER NOT NULL REFERENCES level_sets(id) ON DELETE CASCADE,
			ordinal INTEGER NOT NULL,
			title TEXT NOT NULL,
			contents TEXT NOT NULL,
			PRIMARY KEY (set_id, ordinal)
		)`,
	}

	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores set, recording source as the file it was converted from, and
// returns the new id. The set and its levels are written in one transaction.
func (c *Catalog) Save(ctx context.Context, source string, set types.LevelSet) (int64, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO level_sets (source, author, title, level_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		source, set.Author, set.Title, len(set.Levels), c.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting level set: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading level set id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO levels (set_id, ordinal, title, contents) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing level insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range set.Levels {
		if _, err := stmt.ExecContext(ctx, id, i, l.Title, l.Contents); err != nil {
			return 0, fmt.Errorf("inserting level %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing level set: %w", err)
	}
	return id, nil
}

// List returns all stored level sets, newest first.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, source, author, title, level_count, created_at FROM level_sets ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing level sets: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Source, &e.Author, &e.Title, &e.LevelCount, &created); err != nil {
			return nil, fmt.Errorf("scanning level set: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get reassembles the level set stored under id, levels in original order.
func (c *Catalog) Get(ctx context.Context, id int64) (types.LevelSet, error) {
	var set types.LevelSet
	err := c.db.QueryRowContext(ctx,
		`SELECT author, title FROM level_sets WHERE id = ?`, id,
	).Scan(&set.Author, &set.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return types.LevelSet{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.LevelSet{}, fmt.Errorf("reading level set %d: %w", id, err)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT title, contents FROM levels WHERE set_id = ? ORDER BY ordinal`, id)
	if err != nil {
		return types.LevelSet{}, fmt.Errorf("reading levels of set %d: %w", id, err)
	}
	defer rows.Close()

	set.Levels = []types.Level{}
	for rows.Next() {
		var l types.Level
		if err := rows.Scan(&l.Title, &l.Contents); err != nil {
			return types.LevelSet{}, fmt.Errorf("scanning level: %w", err)
		}
		set.Levels = append(set.Levels, l)
	}
	if err := rows.Err(); err != nil {
		return types.LevelSet{}, err
	}
	return set, nil
}

// Delete removes the level set stored under id together with its levels.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM level_sets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting level set %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting level set %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}
