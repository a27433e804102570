package store_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"pocket-crm/internal/database"
	"pocket-crm/internal/logger"
	"pocket-crm/internal/store"
)

// newTestStore opens a fresh SQLite database in a temp directory with the
// full schema applied.
func newTestStore(t *testing.T) *store.Store {
	s, _ := newTestStoreDB(t)
	return s
}

// newTestStoreDB additionally exposes the raw handle for row-level
// assertions against the association and tag tables.
func newTestStoreDB(t *testing.T) (*store.Store, *sqlx.DB) {
	t.Helper()

	manager := database.NewDBManager(filepath.Join(t.TempDir(), "pocket-crm.db"))
	manager.Log = logger.NewConsoleLogger(io.Discard, "", logger.LogLevelFatal)
	if err := manager.Connect(); err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { manager.Close() })

	if err := manager.ApplyMigrations(); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return store.New(manager.DB, manager.Log), manager.DB
}

func strPtr(s string) *string { return &s }

func tagsPtr(names ...string) *[]string {
	tags := append([]string{}, names...)
	return &tags
}
