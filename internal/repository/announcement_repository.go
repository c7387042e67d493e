package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senshi-dojo/dojo-backend/internal/model"
)

type AnnouncementRepository interface {
	List(ctx context.Context) ([]model.Announcement, error)
	Create(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id int) error
}

type announcementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepository{pool: pool}
}

func (r *announcementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, body, author_id, created_at
		 FROM announcements ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []model.Announcement{}
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *announcementRepository) Create(ctx context.Context, a *model.Announcement) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO announcements (title, body, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		a.Title, a.Body, a.AuthorID,
	).Scan(&a.ID, &a.CreatedAt)
	return translateError(err)
}

func (r *announcementRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
