package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteHistory implements History over a pure-Go SQLite database.
type SQLiteHistory struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ History = (*SQLiteHistory)(nil)

// NewSQLiteHistory opens (and initializes if needed) a SQLite history
// store at dbPath. Use ":memory:" for an ephemeral store.
func NewSQLiteHistory(dbPath string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	h := &SQLiteHistory{db: db}
	if err := h.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return h, nil
}

func (h *SQLiteHistory) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS build_manifests (
		id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		root TEXT NOT NULL,
		node_count INTEGER NOT NULL,
		edge_count INTEGER NOT NULL,
		cycle_count INTEGER NOT NULL,
		content_hash TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_build_manifests_timestamp ON build_manifests(timestamp);
	`
	_, err := h.db.Exec(schema)
	return err
}

// Append inserts m as a new row.
func (h *SQLiteHistory) Append(ctx context.Context, m BuildManifest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.db.ExecContext(ctx,
		`INSERT INTO build_manifests (id, timestamp, root, node_count, edge_count, cycle_count, content_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Timestamp.Unix(), m.Root, m.NodeCount, m.EdgeCount, m.CycleCount, m.ContentHash,
	)
	if err != nil {
		return fmt.Errorf("insert build manifest: %w", err)
	}
	return nil
}

// Recent returns the most recently appended manifests, newest first,
// capped at limit.
func (h *SQLiteHistory) Recent(ctx context.Context, limit int) ([]BuildManifest, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rows, err := h.db.QueryContext(ctx,
		`SELECT id, timestamp, root, node_count, edge_count, cycle_count, content_hash
		 FROM build_manifests ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query build manifests: %w", err)
	}
	defer rows.Close()

	var manifests []BuildManifest
	for rows.Next() {
		var m BuildManifest
		var ts int64
		if err := rows.Scan(&m.ID, &ts, &m.Root, &m.NodeCount, &m.EdgeCount, &m.CycleCount, &m.ContentHash); err != nil {
			return nil, fmt.Errorf("scan build manifest: %w", err)
		}
		m.Timestamp = time.Unix(ts, 0).UTC()
		manifests = append(manifests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return manifests, nil
}

// Close closes the underlying database connection.
func (h *SQLiteHistory) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db.Close()
}
