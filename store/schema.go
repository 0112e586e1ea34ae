package store

import "context"

// initSchema creates the plans table if it does not exist.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		digest TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		locations INTEGER NOT NULL,
		budget INTEGER NOT NULL,
		score INTEGER NOT NULL,
		total_time INTEGER NOT NULL,
		algorithm TEXT NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		plan TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at);
	CREATE INDEX IF NOT EXISTS idx_plans_digest ON plans(digest);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}
