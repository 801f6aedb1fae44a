package postgresql

import (
	"context"
	"fmt"

	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

// EnsureSchema creates the table set when it does not exist yet. All
// statements are idempotent so this can run on every startup.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			staff_type TEXT NOT NULL DEFAULT '',
			work_group TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'employee',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS time_logs (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			timestamp_ms BIGINT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('in', 'out')),
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			ip_address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_time_logs_user_ts ON time_logs (user_id, timestamp_ms)`,
		`CREATE TABLE IF NOT EXISTS shifts (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			late_grace_period INT NOT NULL DEFAULT 15
		)`,
		`CREATE TABLE IF NOT EXISTS geo_settings (
			id INT PRIMARY KEY CHECK (id = 1),
			center_latitude DOUBLE PRECISION,
			center_longitude DOUBLE PRECISION,
			radius INT NOT NULL DEFAULT 100
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
