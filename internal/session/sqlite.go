package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mxradar/mxradar/internal/dbx"
	"github.com/mxradar/mxradar/internal/session/migrations"
)

// Storage keys. Exactly these two rows exist while a session is stored.
const (
	keyToken   = "token"
	keyProfile = "profile"
)

// SQLiteStore keeps the session in a local SQLite database so it survives
// restarts, the way a browser client would keep it in per-origin storage.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at dsn and runs
// pending migrations.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-migrated database handle. Used by tests.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the stored session, or returns nil when the store is empty.
// A token row without a profile row (or vice versa) is treated as corrupt.
func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	token, err := s.get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	profile, err := s.get(ctx, keyProfile)
	if err != nil {
		return nil, err
	}

	if token == nil && profile == nil {
		return nil, nil
	}
	if token == nil || profile == nil {
		return nil, fmt.Errorf("session store corrupt: token and profile out of sync")
	}

	var p Profile
	if err := json.Unmarshal(profile, &p); err != nil {
		return nil, fmt.Errorf("decode stored profile: %w", err)
	}
	return &Session{Token: string(token), Profile: p}, nil
}

// Save writes token and profile in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, sess *Session) error {
	profile, err := json.Marshal(sess.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return set(ctx, tx, keyProfile, profile)
	})
}

// Clear removes both rows in a single transaction. Idempotent.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyProfile)
		if err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}
