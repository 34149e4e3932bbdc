package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/lenslearn/backend/internal/app/models"
)

// CreateDefaultData seeds a default admin account so the admin-gated routes
// are reachable on a fresh database. Idempotent: the insert is skipped when
// any admin already exists.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, models.RoleAdmin).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	if exists {
		return nil
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (email, name, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		"admin@lenslearn.app", "Default Admin", models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	lgr.Info().Str("email", "admin@lenslearn.app").Msg("Seeded default admin user")
	return nil
}
