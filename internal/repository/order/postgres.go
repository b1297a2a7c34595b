package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"birdies-cafe/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	const q = `
INSERT INTO orders (id, user_id, user_email, items, location_id, location_name,
                    pickup_time, contact_name, contact_phone, payment_method,
                    total_cents, stars_earned, status, order_number, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`
	_, err = r.pool.Exec(ctx, q,
		o.ID, o.UserID, o.UserEmail, items,
		o.Location.ID, o.Location.Name,
		o.PickupTime, o.ContactInfo.Name, o.ContactInfo.Phone, o.PaymentMethod,
		o.TotalCents, o.StarsEarned, o.Status, o.OrderNumber, o.CreatedAt,
	)
	return err
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, user_email, items, location_id, location_name,
       pickup_time, contact_name, contact_phone, payment_method,
       total_cents, stars_earned, status, order_number, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		var items []byte
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.UserEmail, &items,
			&o.Location.ID, &o.Location.Name,
			&o.PickupTime, &o.ContactInfo.Name, &o.ContactInfo.Phone, &o.PaymentMethod,
			&o.TotalCents, &o.StarsEarned, &o.Status, &o.OrderNumber, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, fmt.Errorf("unmarshal items: %w", err)
			}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
