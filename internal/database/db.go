package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pocket-crm/internal/logger"
	"pocket-crm/internal/sessionstore"
)

type DBManager struct {
	DB   *sqlx.DB
	path string
	Log  logger.Logger
}

func NewDBManager(dbPath string) *DBManager {
	return &DBManager{
		path: dbPath,
	}
}

// Connect opens the SQLite database, creating the parent directory and the
// file on first run. Foreign keys are enabled on every pooled connection via
// the DSN pragma rather than a one-off Exec.
func (dm *DBManager) Connect() error {
	if err := os.MkdirAll(filepath.Dir(dm.path), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if _, err := os.Stat(dm.path); err != nil {
		dm.Log.Info("No database found. Creating database...")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", dm.path)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	dm.DB = db
	if err = dm.DB.Ping(); err != nil {
		dm.DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dm.Log.Info("Successfully connected to database")
	return nil
}

func (dm *DBManager) Close() error {
	if dm.DB != nil {
		dm.Log.Info("Closing database connection")
		return dm.DB.Close()
	}
	return nil
}

// InitSessionStore opens the buntdb-backed session store next to the SQLite
// file.
func (dm *DBManager) InitSessionStore() (*sessionstore.BuntDBSessionStore, error) {
	sessionPath := filepath.Join(filepath.Dir(dm.path), "sessions.db")
	store, err := sessionstore.NewBuntDBSessionStore(sessionPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ApplyMigrations creates the five-table schema if it does not exist yet.
func (dm *DBManager) ApplyMigrations() error {
	if dm.DB == nil {
		return errors.New("database connection is not established, call Connect() first")
	}

	dm.Log.Info("Applying database migrations...")
	if _, err := dm.DB.Exec(createSchemaSQL); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	dm.Log.Info("Database migrations applied successfully")
	return nil
}
