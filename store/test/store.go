// Package test provides a shared harness for store tests backed by a
// throwaway SQLite database.
package test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mindwell/mindwell/internal/profile"
	"github.com/mindwell/mindwell/store"
	"github.com/mindwell/mindwell/store/db/sqlite"
)

// NewTestingStore opens a migrated store over a fresh SQLite file in a
// per-test temp directory.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	dir := t.TempDir()
	p := &profile.Profile{
		Mode:    "dev",
		Data:    dir,
		Driver:  "sqlite",
		DSN:     filepath.Join(dir, "mindwell_test.db"),
		Version: "1.0.0",
	}

	driver, err := sqlite.NewDB(p)
	if err != nil {
		t.Fatalf("failed to open sqlite driver: %v", err)
	}
	ts := store.New(driver, p)
	if err := ts.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if err := ts.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return ts
}
