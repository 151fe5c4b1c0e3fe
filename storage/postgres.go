package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps payloads in a single key/value table. It is selected
// when DATABASE_URL is set, so a fleet of kiosks can share one pool.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	// Avoid "prepared statement already exists" behind PgBouncer-style
	// poolers: use the simple protocol (no server-side prepared statements).
	config.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	db := stdlib.OpenDB(*config)
	db.SetConnMaxIdleTime(4 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kiosk_storage (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL
	)`); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(key string, v any) (bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kiosk_storage WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *PostgresStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO kiosk_storage (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, data)
	return err
}

func (s *PostgresStore) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM kiosk_storage WHERE key = $1`, key)
	return err
}

func (s *PostgresStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kiosk_storage`)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
