package kvstore

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/alama/core"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   text PRIMARY KEY,
	value bytea NOT NULL
)`

// Postgres keeps all entries in a single two-column kv table.
type Postgres struct {
	db *sqlx.DB
}

var _ core.KVStore = (*Postgres)(nil) // interface compliance check

// NewPostgres connects, waits for the database to be ready and ensures
// the kv table exists.
func NewPostgres(ctx context.Context, conf *core.Config) (*Postgres, error) {
	db, err := openDB(conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, db); err != nil {
		return nil, err
	}
	if _, err = db.ExecContext(ctx, kvSchema); err != nil {
		return nil, errors.Wrap(err, "ensuring kv table")
	}
	return &Postgres{db: db}, nil
}

func openDB(conf *core.Config) (*sqlx.DB, error) {
	userInfo := url.UserPassword(conf.Database.User, conf.Database.Password)

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     userInfo,
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	return sqlx.Open(conf.Database.Engine, u.String())
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		select {
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func (s *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.GetContext(ctx, &data, "SELECT value FROM kv WHERE key = $1", key)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "reading %s", key)
	}
	return data, nil
}

func (s *Postgres) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, data,
	)
	if err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = $1", key); err != nil {
		return errors.Wrapf(err, "removing %s", key)
	}
	return nil
}

func (s *Postgres) Close() error { return s.db.Close() }
