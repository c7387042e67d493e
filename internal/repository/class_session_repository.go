package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senshi-dojo/dojo-backend/internal/model"
)

type ClassSessionRepository interface {
	List(ctx context.Context) ([]model.ClassSession, error)
	Create(ctx context.Context, s *model.ClassSession) error
	Delete(ctx context.Context, id int) error
}

type classSessionRepository struct {
	pool *pgxpool.Pool
}

func NewClassSessionRepository(pool *pgxpool.Pool) ClassSessionRepository {
	return &classSessionRepository{pool: pool}
}

func (r *classSessionRepository) List(ctx context.Context) ([]model.ClassSession, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, date, start_time, end_time, instructor, capacity, description
		 FROM sessions ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []model.ClassSession{}
	for rows.Next() {
		var s model.ClassSession
		if err := rows.Scan(&s.ID, &s.Title, &s.Date, &s.StartTime, &s.EndTime, &s.Instructor, &s.Capacity, &s.Description); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *classSessionRepository) Create(ctx context.Context, s *model.ClassSession) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO sessions (title, date, start_time, end_time, instructor, capacity, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		s.Title, s.Date, s.StartTime, s.EndTime, s.Instructor, s.Capacity, s.Description,
	).Scan(&s.ID)
	return translateError(err)
}

func (r *classSessionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
