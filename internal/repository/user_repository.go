package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/senshi-dojo/dojo-backend/internal/model"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, id int, patch model.UserPatch) (*model.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, role, phone, profile_picture, verified, accepted_terms, joined_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Phone,
		&u.ProfilePicture, &u.Verified, &u.AcceptedTerms, &u.JoinedAt)
	if err != nil {
		return nil, translateError(err)
	}
	if u.Role, err = model.ParseRole(role); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// List returns all users, newest members first.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY joined_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Create inserts u; id and joined_at come from the database.
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, phone, profile_picture, verified, accepted_terms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, joined_at`,
		u.Name, u.Email, u.PasswordHash, string(u.Role), u.Phone, u.ProfilePicture, u.Verified, u.AcceptedTerms,
	).Scan(&u.ID, &u.JoinedAt)
	return translateError(err)
}

// Update applies patch in a single statement; nil fields keep their value.
func (r *userRepository) Update(ctx context.Context, id int, patch model.UserPatch) (*model.User, error) {
	var role *string
	if patch.Role != nil {
		s := string(*patch.Role)
		role = &s
	}

	return scanUser(r.pool.QueryRow(ctx,
		`UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			profile_picture = COALESCE($5, profile_picture),
			accepted_terms = COALESCE($6, accepted_terms),
			role = COALESCE($7, role),
			verified = COALESCE($8, verified),
			password_hash = COALESCE($9, password_hash)
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, patch.Name, patch.Email, patch.Phone, patch.ProfilePicture, patch.AcceptedTerms, role, patch.Verified, patch.PasswordHash,
	))
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes a user; attendance and announcements cascade.
func (r *userRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
