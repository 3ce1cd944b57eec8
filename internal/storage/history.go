package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const historyFileName = "history.db"

// PasteRecord is one execute-paste outcome.
type PasteRecord struct {
	ID         int64         `json:"id"`
	At         time.Time     `json:"at"`
	BaseMs     int           `json:"base_ms"`
	JitterMs   int           `json:"jitter_ms"`
	Characters int           `json:"characters"`
	Duration   time.Duration `json:"duration_ns"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
}

// History stores paste outcomes in SQLite.
type History struct {
	conn *sql.DB
}

// OpenHistory opens the history database in dir and initializes the schema.
func OpenHistory(dir string) (*History, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	dbPath := filepath.Join(dir, historyFileName)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	history := &History{conn: conn}
	if err := history.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return history, nil
}

// Close closes the database connection.
func (history *History) Close() error {
	return history.conn.Close()
}

func (history *History) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pastes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at_unix_ms INTEGER NOT NULL,
		base_ms INTEGER NOT NULL,
		jitter_ms INTEGER NOT NULL,
		characters INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		success BOOLEAN NOT NULL,
		error_message TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_pastes_at ON pastes(at_unix_ms);
	`

	_, err := history.conn.Exec(schema)
	return err
}

// Record inserts one outcome.
func (history *History) Record(ctx context.Context, record PasteRecord) error {
	var errorMessage sql.NullString
	if record.Error != "" {
		errorMessage = sql.NullString{String: record.Error, Valid: true}
	}

	_, err := history.conn.ExecContext(ctx, `
		INSERT INTO pastes (at_unix_ms, base_ms, jitter_ms, characters, duration_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.At.UnixMilli(),
		record.BaseMs,
		record.JitterMs,
		record.Characters,
		record.Duration.Milliseconds(),
		record.Success,
		errorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert paste record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (history *History) Recent(ctx context.Context, limit int) ([]PasteRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := history.conn.QueryContext(ctx, `
		SELECT id, at_unix_ms, base_ms, jitter_ms, characters, duration_ms, success, error_message
		FROM pastes
		ORDER BY at_unix_ms DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query paste records: %w", err)
	}
	defer rows.Close()

	var records []PasteRecord
	for rows.Next() {
		var (
			record       PasteRecord
			atMs         int64
			durationMs   int64
			errorMessage sql.NullString
		)
		if err := rows.Scan(&record.ID, &atMs, &record.BaseMs, &record.JitterMs,
			&record.Characters, &durationMs, &record.Success, &errorMessage); err != nil {
			return nil, fmt.Errorf("scan paste record: %w", err)
		}
		record.At = time.UnixMilli(atMs)
		record.Duration = time.Duration(durationMs) * time.Millisecond
		record.Error = errorMessage.String
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate paste records: %w", err)
	}
	return records, nil
}
