package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senshi-dojo/dojo-backend/internal/model"
)

// ContactRepository is write-only; inquiries are read by staff outside the API.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Message,
	).Scan(&c.ID, &c.CreatedAt)
	return translateError(err)
}
