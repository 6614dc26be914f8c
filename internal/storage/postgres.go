package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrEmbeddedCredentials is returned when a PostgreSQL connection string
// carries a password. Credentials must come from the environment or .pgpass
// so they never end up in shell history or config files.
var ErrEmbeddedCredentials = errors.New("connection string must not contain a password")

// PostgresKV stores keys in a kv table on a PostgreSQL server. It exists for
// installs that keep their data directory on a shared machine; the store
// layer itself is still single-writer.
type PostgresKV struct {
	db *sqlx.DB
}

func NewPostgresKV(connStr string) (*PostgresKV, error) {
	if HasEmbeddedCredentials(connStr) {
		return nil, ErrEmbeddedCredentials
	}

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &PostgresKV{db: db}, nil
}

// HasEmbeddedCredentials reports whether a connection string embeds a
// password, either in URL form or as a DSN password= parameter.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}
	for _, part := range strings.Fields(connStr) {
		if strings.HasPrefix(part, "password=") {
			return true
		}
	}
	return false
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.GetContext(ctx, &value, "SELECT value FROM kv WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Remove(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, "DELETE FROM kv WHERE key = $1", key); err != nil {
		return fmt.Errorf("removing key %q: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	return p.db.Close()
}
