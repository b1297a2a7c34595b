package user

import (
	"context"

	"birdies-cafe/internal/domain"
)

// Repository stores registered accounts. Create returns
// domain.ErrAlreadyExists when the email is taken.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
