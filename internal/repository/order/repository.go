package order

import (
	"context"

	"birdies-cafe/internal/domain"
)

// Repository persists placed orders. Orders are immutable once written.
type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
