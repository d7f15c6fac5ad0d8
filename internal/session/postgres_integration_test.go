//go:build integration

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestPostgresStore_Lifecycle(t *testing.T) {
	databaseURL := os.Getenv("LOCAL_GUIDE_APP_DATABASEURL")
	if databaseURL == "" {
		t.Skip("LOCAL_GUIDE_APP_DATABASEURL not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, databaseURL, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}
	defer store.Close()

	sess := newTestSession()
	sess.CreatedAt = time.Now()
	sess.UpdatedAt = sess.CreatedAt

	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer func() { _ = store.Delete(ctx, sess.ID) }()

	sess.Notice = "moved"
	sess.UpdatedAt = time.Now()
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Notice != "moved" || got.Coords != sess.Coords {
		t.Errorf("Get() = %+v", got)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}
