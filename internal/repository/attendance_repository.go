package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senshi-dojo/dojo-backend/internal/model"
)

type AttendanceRepository interface {
	// List returns records newest first, restricted to userID when non-nil.
	List(ctx context.Context, userID *int) ([]model.Attendance, error)
	Create(ctx context.Context, a *model.Attendance) error
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) List(ctx context.Context, userID *int) ([]model.Attendance, error) {
	query := `SELECT id, user_id, session_id, status, timestamp FROM attendance`
	var args []interface{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY timestamp DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.Attendance{}
	for rows.Next() {
		var a model.Attendance
		var status string
		if err := rows.Scan(&a.ID, &a.UserID, &a.SessionID, &status, &a.Timestamp); err != nil {
			return nil, err
		}
		if a.Status, err = model.ParseAttendanceStatus(status); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Create inserts a; the timestamp is always assigned by the database.
func (r *attendanceRepository) Create(ctx context.Context, a *model.Attendance) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance (user_id, session_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, timestamp`,
		a.UserID, a.SessionID, string(a.Status),
	).Scan(&a.ID, &a.Timestamp)
	return translateError(err)
}
