// Package index persists a manifest into a SQLite catalog so programmatic
// consumers can query layers and widget membership without parsing the
// manifest files.
package index

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/panelworks/lcdgen/api"
)

// Writer owns one catalog database.
type Writer struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS document (
	source_file TEXT NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS layers (
	filename TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	original_name TEXT,
	folder TEXT,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS widgets (
	pos INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	has_decimal INTEGER NOT NULL DEFAULT 0,
	count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS widget_layers (
	widget_pos INTEGER NOT NULL,
	digit TEXT,
	slot INTEGER NOT NULL,
	filename TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_widget_layers ON widget_layers(widget_pos, slot);
`

// NewWriter opens (or creates) the catalog at dbPath and initializes the
// schema. Existing content is replaced on Write.
func NewWriter(dbPath string) (*Writer, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Bulk-insert tuning; the catalog is rebuilt from scratch each run.
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Writer{db: db}, nil
}

// Write replaces the catalog content with the given manifest, in one
// transaction.
func (w *Writer) Write(m *api.Manifest) error {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"document", "layers", "widgets", "widget_layers"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO document (source_file, width, height) VALUES (?, ?, ?)",
		m.SourceFile, m.DocumentWidth, m.DocumentHeight,
	); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	layerStmt, err := tx.Prepare(`
		INSERT INTO layers (filename, name, original_name, folder, x, y, width, height)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = layerStmt.Close() }()
	for _, l := range m.Layers {
		if _, err := layerStmt.Exec(
			l.Filename, l.Name, l.OriginalName, strings.Join(l.FolderPath, "/"),
			l.X, l.Y, l.Width, l.Height,
		); err != nil {
			return fmt.Errorf("insert layer %s: %w", l.Filename, err)
		}
	}

	widgetStmt, err := tx.Prepare(`
		INSERT INTO widgets (pos, name, type, has_decimal, count) VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = widgetStmt.Close() }()
	memberStmt, err := tx.Prepare(`
		INSERT INTO widget_layers (widget_pos, digit, slot, filename) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = memberStmt.Close() }()

	for pos, wr := range m.Widgets {
		if _, err := widgetStmt.Exec(pos, wr.Name, wr.Type, wr.HasDecimal, wr.Count); err != nil {
			return fmt.Errorf("insert widget %s: %w", wr.Name, err)
		}
		for slot, filename := range wr.Layers {
			if _, err := memberStmt.Exec(pos, nil, slot, filename); err != nil {
				return fmt.Errorf("insert member of %s: %w", wr.Name, err)
			}
		}
		for _, d := range wr.Digits {
			for slot, filename := range d.Layers {
				if _, err := memberStmt.Exec(pos, d.Name, slot, filename); err != nil {
					return fmt.Errorf("insert digit member of %s: %w", wr.Name, err)
				}
			}
		}
	}

	return tx.Commit()
}

// Close releases the database handle.
func (w *Writer) Close() error {
	return w.db.Close()
}
