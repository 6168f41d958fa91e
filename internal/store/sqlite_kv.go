package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "emoboard.sqlite"

// SQLiteKV keeps values in a single kv table. The connection stays open for the lifetime of the
// process; every Get/Set is its own statement.
type SQLiteKV struct {
	db   *sql.DB
	path string
}

func OpenSQLite(path string) (*SQLiteKV, error) {
	return openSQLite(context.Background(), path)
}

func openSQLite(ctx context.Context, path string) (*SQLiteKV, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the CLI write while the TUI holds a reader open.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLiteKV(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteKV{db: db, path: path}, nil
}

func migrateSQLiteKV(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			k TEXT PRIMARY KEY,
			v BLOB NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteKV) Path() string { return s.path }

func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	var v []byte
	err := s.db.QueryRowContext(context.Background(), `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *SQLiteKV) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at_unixms = excluded.updated_at_unixms`,
		key, value, time.Now().UTC().UnixMilli())
	return err
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
