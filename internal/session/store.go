package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"local-guide/internal/config"
)

var ErrNotFound = errors.New("session not found")

// Store persists sessions. Get returns a copy; changes are only kept after Save.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close()
}

// NewStore returns a Postgres store when a database URL is configured and an
// in-memory store otherwise
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	if cfg.App.DatabaseURL == "" {
		logger.Info("database URL not set, keeping sessions in memory", "ttl", cfg.App.SessionTTL)
		return NewMemoryStore(cfg.App.SessionTTL), nil
	}

	store, err := NewPostgresStore(ctx, cfg.App.DatabaseURL, cfg.App.SessionTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres session store: %w", err)
	}
	return store, nil
}
