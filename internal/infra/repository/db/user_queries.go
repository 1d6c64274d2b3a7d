package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/google/uuid"
)

func (q *Queries) CreateUser(ctx context.Context, user *model.UserModel) error {
	const stmt = `
INSERT INTO users (id, username, email, password_hash, is_admin, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.db.Exec(ctx, stmt,
		user.ID,
		user.Username,
		user.Email,
		user.HashPassword,
		user.IsAdmin,
		user.IsActive,
		user.CreatedAt,
	)
	return err
}

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	const query = `
SELECT id, username, email, password_hash, is_admin, is_active, created_at
FROM users
WHERE id = $1`

	var u model.UserModel
	err := q.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.HashPassword, &u.IsAdmin, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	const query = `
SELECT id, username, email, password_hash, is_admin, is_active, created_at
FROM users
WHERE email = $1`

	var u model.UserModel
	err := q.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.HashPassword, &u.IsAdmin, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmailOrUsername 註冊前檢查用, email或username任一重複即回傳
func (q *Queries) GetUserByEmailOrUsername(ctx context.Context, email, username string) (*model.UserModel, error) {
	const query = `
SELECT id, username, email, password_hash, is_admin, is_active, created_at
FROM users
WHERE email = $1 OR username = $2
LIMIT 1`

	var u model.UserModel
	err := q.db.QueryRow(ctx, query, email, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.HashPassword, &u.IsAdmin, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
