package profile

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"birdies-cafe/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Profile) error {
	const q = `
INSERT INTO profiles (user_id, has_completed_onboarding, milk, diet, allergies, preferred_location, favorites, stars)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
ON CONFLICT (user_id) DO NOTHING
`
	_, err := r.pool.Exec(ctx, q,
		p.UserID,
		p.HasCompletedOnboarding,
		p.Preferences.Milk,
		p.Preferences.Diet,
		p.Preferences.Allergies,
		p.PreferredLocationID,
		p.Favorites,
		p.Stars,
	)
	return err
}

func (r *postgresRepo) Load(ctx context.Context, userID string) (*domain.Profile, error) {
	const q = `
SELECT p.user_id::text, u.email, COALESCE(u.name, ''), p.has_completed_onboarding,
       p.milk, p.diet, p.allergies, COALESCE(p.preferred_location, ''),
       p.favorites, p.stars, p.created_at, p.updated_at
FROM profiles p
JOIN users u ON u.id = p.user_id
WHERE p.user_id = $1
`
	var p domain.Profile
	err := r.pool.QueryRow(ctx, q, userID).Scan(
		&p.UserID,
		&p.Email,
		&p.Name,
		&p.HasCompletedOnboarding,
		&p.Preferences.Milk,
		&p.Preferences.Diet,
		&p.Preferences.Allergies,
		&p.PreferredLocationID,
		&p.Favorites,
		&p.Stars,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if p.Favorites == nil {
		p.Favorites = []int{}
	}
	if p.Preferences.Allergies == nil {
		p.Preferences.Allergies = []string{}
	}
	return &p, nil
}

// Save merges only the fields present in the update; NULL parameters keep
// the stored value.
func (r *postgresRepo) Save(ctx context.Context, userID string, u Update) error {
	const q = `
UPDATE profiles SET
	has_completed_onboarding = COALESCE($2, has_completed_onboarding),
	milk = COALESCE($3, milk),
	diet = COALESCE($4, diet),
	allergies = COALESCE($5, allergies),
	preferred_location = COALESCE($6, preferred_location),
	favorites = COALESCE($7, favorites),
	stars = COALESCE($8, stars),
	updated_at = now()
WHERE user_id = $1
`
	var milk, diet *string
	var allergies *[]string
	if u.Preferences != nil {
		milk = &u.Preferences.Milk
		diet = &u.Preferences.Diet
		allergies = &u.Preferences.Allergies
	}
	cmd, err := r.pool.Exec(ctx, q, userID,
		u.HasCompletedOnboarding, milk, diet, allergies,
		u.PreferredLocationID, u.Favorites, u.Stars,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if u.Name != nil {
		if _, err := r.pool.Exec(ctx, `UPDATE users SET name = $2 WHERE id = $1`, userID, *u.Name); err != nil {
			return err
		}
	}
	return nil
}
