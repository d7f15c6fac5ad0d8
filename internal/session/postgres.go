package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS guide_sessions (
		id         UUID PRIMARY KEY,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
`

// PostgresStore keeps one JSONB row per session. Rows idle longer than the TTL
// are treated as missing and removed on the next write.
type PostgresStore struct {
	pool   *pgxpool.Pool
	ttl    time.Duration
	logger *slog.Logger
}

func NewPostgresStore(ctx context.Context, databaseURL string, ttl time.Duration, logger *slog.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	return &PostgresStore{
		pool:   pool,
		ttl:    ttl,
		logger: logger.With("component", "postgres-session-store"),
	}, nil
}

func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	query := `INSERT INTO guide_sessions (id, data, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	if _, err := p.pool.Exec(ctx, query, s.ID, data, s.CreatedAt, s.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	p.expire(ctx)
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	query := `SELECT data FROM guide_sessions WHERE id = $1 AND updated_at > $2`

	var data []byte
	if err := p.pool.QueryRow(ctx, query, id, p.cutoff()).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	query := `UPDATE guide_sessions SET data = $2, updated_at = $3 WHERE id = $1 AND updated_at > $4`
	tag, err := p.pool.Exec(ctx, query, s.ID, data, s.UpdatedAt, p.cutoff())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM guide_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Close() {
	p.pool.Close()
}

func (p *PostgresStore) cutoff() time.Time {
	if p.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-p.ttl)
}

// expire drops idle rows, logging any failure
func (p *PostgresStore) expire(ctx context.Context) {
	if p.ttl <= 0 {
		return
	}
	tag, err := p.pool.Exec(ctx, `DELETE FROM guide_sessions WHERE updated_at <= $1`, p.cutoff())
	if err != nil {
		p.logger.Warn("failed to expire idle sessions", "error", err)
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		p.logger.Debug("expired idle sessions", "count", n)
	}
}
