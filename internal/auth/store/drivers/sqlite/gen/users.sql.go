// source: users.sql

package gen

import (
	"context"
	"database/sql"
	"time"
)

const userColumns = `id, name, email, password_hash, role, status, totp_secret_encrypted,
       two_factor_enabled, totp_confirmed_at, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.Status,
		&i.TotpSecretEncrypted,
		&i.TwoFactorEnabled,
		&i.TotpConfirmedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + `
FROM users
WHERE id = ?
`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + `
FROM users
WHERE email = ?
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const createUser = `-- name: CreateUser :exec
INSERT INTO users (
    id, name, email, password_hash, role, status, totp_secret_encrypted,
    two_factor_enabled, totp_confirmed_at, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateUserParams struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Role                string
	Status              string
	TotpSecretEncrypted sql.NullString
	TwoFactorEnabled    bool
	TotpConfirmedAt     sql.NullTime
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.Status,
		arg.TotpSecretEncrypted,
		arg.TwoFactorEnabled,
		arg.TotpConfirmedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateUser = `-- name: UpdateUser :execrows
UPDATE users
SET status                = CASE WHEN ? THEN ? ELSE status END,
    totp_secret_encrypted = CASE WHEN ? THEN ? ELSE totp_secret_encrypted END,
    two_factor_enabled    = CASE WHEN ? THEN ? ELSE two_factor_enabled END,
    totp_confirmed_at     = CASE WHEN ? THEN ? ELSE totp_confirmed_at END,
    updated_at            = ?
WHERE id = ?
`

type UpdateUserParams struct {
	SetStatus           bool
	Status              string
	SetTotpSecret       bool
	TotpSecretEncrypted sql.NullString
	SetTwoFactorEnabled bool
	TwoFactorEnabled    bool
	SetTotpConfirmedAt  bool
	TotpConfirmedAt     sql.NullTime
	UpdatedAt           time.Time
	ID                  string
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateUser,
		arg.SetStatus,
		arg.Status,
		arg.SetTotpSecret,
		arg.TotpSecretEncrypted,
		arg.SetTwoFactorEnabled,
		arg.TwoFactorEnabled,
		arg.SetTotpConfirmedAt,
		arg.TotpConfirmedAt,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listUsers = `-- name: ListUsers :many
SELECT ` + userColumns + `
FROM users
ORDER BY id ASC
`

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countAdmins = `-- name: CountAdmins :one
SELECT COUNT(*) FROM users WHERE role = 'admin'
`

func (q *Queries) CountAdmins(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAdmins)
	var count int64
	err := row.Scan(&count)
	return count, err
}
