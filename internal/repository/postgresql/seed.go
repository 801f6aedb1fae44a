package postgresql

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffclock/attendance-backend-go/internal/fixtures"
	"github.com/staffclock/attendance-backend-go/internal/pkg/database"
)

// SeedDefaults inserts the root admin, the three shifts and the singleton
// geofence row when they are missing. Existing rows are left untouched, so
// running this on every startup is safe.
func SeedDefaults(ctx context.Context, db *database.DB, rootAdminPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(rootAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash root admin password: %w", err)
	}

	root := fixtures.RootAdmin()
	_, err = db.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, first_name, last_name, position, staff_type, work_group, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, root.ID, root.Username, string(hash), root.FirstName, root.LastName, root.Position, root.StaffType, root.WorkGroup, root.Role)
	if err != nil {
		return fmt.Errorf("seed root admin: %w", err)
	}

	// Keep the id sequence ahead of the explicitly inserted root admin.
	_, err = db.Exec(ctx, `SELECT setval('users_id_seq', GREATEST((SELECT MAX(id) FROM users), 1))`)
	if err != nil {
		return fmt.Errorf("advance users id sequence: %w", err)
	}

	for _, s := range fixtures.DefaultShifts() {
		_, err = db.Exec(ctx, `
			INSERT INTO shifts (id, name, start_time, end_time, late_grace_period)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, s.ID, s.Name, s.StartTime, s.EndTime, s.LateGracePeriod)
		if err != nil {
			return fmt.Errorf("seed shift %q: %w", s.Name, err)
		}
	}

	geo := fixtures.DefaultGeoSettings()
	_, err = db.Exec(ctx, `
		INSERT INTO geo_settings (id, center_latitude, center_longitude, radius)
		VALUES (1, NULL, NULL, $1)
		ON CONFLICT (id) DO NOTHING
	`, geo.Radius)
	if err != nil {
		return fmt.Errorf("seed geo settings: %w", err)
	}

	return nil
}
