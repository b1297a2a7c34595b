package profile

import (
	"context"

	"birdies-cafe/internal/domain"
)

// Update is a partial profile write. Nil fields are left untouched by Save,
// mirroring the upsert-merge semantics of the original document store.
type Update struct {
	Name                   *string
	HasCompletedOnboarding *bool
	Preferences            *domain.Preferences
	PreferredLocationID    *string
	Favorites              *[]int
	Stars                  *int64
}

// Repository persists per-user profile documents. Load returns
// domain.ErrNotFound for unknown users; callers fall back to a default
// profile rather than failing sign-in. Save is best-effort from the
// session's point of view.
type Repository interface {
	Create(ctx context.Context, p domain.Profile) error
	Load(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, userID string, u Update) error
}
