package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/dayplan/planner"
)

// SavePlan inserts rec. An empty ID is filled with a fresh UUID and a zero
// CreatedAt with the current time; both are written back into rec.
func (s *SQLiteStore) SavePlan(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Plan == nil {
		return fmt.Errorf("store: nil record or plan")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	body, err := json.Marshal(rec.Plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO plans (id, digest, source, locations, budget, score, total_time, algorithm, elapsed_ns, created_at, plan)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Digest, rec.Source, rec.Locations, rec.Budget, rec.Score, rec.TotalTime,
		rec.Algorithm, int64(rec.Elapsed), rec.CreatedAt.UnixNano(), string(body))
	if err != nil {
		return fmt.Errorf("failed to insert plan %s: %w", rec.ID, err)
	}

	return nil
}

const selectPlan = `
	SELECT id, digest, source, locations, budget, score, total_time, algorithm, elapsed_ns, created_at, plan
	FROM plans`

// GetPlan loads the record with the given id.
func (s *SQLiteStore) GetPlan(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectPlan+` WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListPlans returns up to limit records, newest first. limit ≤ 0 means all.
func (s *SQLiteStore) ListPlans(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, selectPlan+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}

	return out, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		rec     Record
		elapsed int64
		created int64
		body    string
	)
	err := sc.Scan(&rec.ID, &rec.Digest, &rec.Source, &rec.Locations, &rec.Budget, &rec.Score,
		&rec.TotalTime, &rec.Algorithm, &elapsed, &created, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}
	rec.Elapsed = time.Duration(elapsed)
	rec.CreatedAt = time.Unix(0, created).UTC()

	rec.Plan = new(planner.Plan)
	if err := json.Unmarshal([]byte(body), rec.Plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", rec.ID, err)
	}

	return &rec, nil
}
