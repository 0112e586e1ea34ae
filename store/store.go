// Package store keeps a history of solved plans in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/dayplan/planner"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by GetPlan for an unknown id.
var ErrNotFound = errors.New("store: plan not found")

// Record is one solved instance.
type Record struct {
	ID        string
	Digest    string // input.Digest of the instance
	Source    string // where the instance came from, e.g. a file name
	Locations int
	Budget    int64
	Score     int64
	TotalTime int64
	Algorithm string
	Elapsed   time.Duration // wall time of the solve
	CreatedAt time.Time
	Plan      *planner.Plan
}

// Store is the plan history.
type Store interface {
	SavePlan(ctx context.Context, rec *Record) error
	GetPlan(ctx context.Context, id string) (*Record, error)
	ListPlans(ctx context.Context, limit int) ([]*Record, error)
	Close() error
}

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the history database at dbPath.
// Creates parent directories if needed. Enables WAL mode and a busy timeout.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directories: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", dbPath)

	return open(ctx, connStr)
}

// NewMemoryStore creates a private in-memory store, for tests.
func NewMemoryStore(ctx context.Context) (*SQLiteStore, error) {
	// a unique name keeps shared-cache databases of different stores apart
	connStr := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	return open(ctx, connStr)
}

func open(ctx context.Context, connStr string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(2)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
