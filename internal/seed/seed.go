package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Apply inserts a demo account for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("birdies1"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var userID string
	err = pool.QueryRow(ctx, `
INSERT INTO users (email, password_hash, name)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`, "demo@birdies.cafe", string(hash), "Demo Birdie").Scan(&userID)
	if err != nil {
		return fmt.Errorf("upsert demo user: %w", err)
	}

	_, err = pool.Exec(ctx, `
INSERT INTO profiles (user_id, has_completed_onboarding, milk, diet, allergies, favorites, stars)
VALUES ($1, true, 'Oat', 'None', '{}', '{3,11}', 12)
ON CONFLICT (user_id) DO NOTHING
`, userID)
	if err != nil {
		return fmt.Errorf("upsert demo profile: %w", err)
	}

	return nil
}
