// Package pgrepo stores users in PostgreSQL through database/sql.
package pgrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jrsteele09/go-session-server/internal/pgutil"
	"github.com/jrsteele09/go-session-server/users"
)

const (
	schemaQuery = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	username VARCHAR(50) NOT NULL UNIQUE,
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
)`

	getByUsernameQuery = `SELECT id, email, username, password, is_admin, is_active FROM users WHERE username = $1`

	insertQuery = `INSERT INTO users (email, username, password) VALUES ($1, $2, $3) RETURNING id, is_admin, is_active`

	softDeleteQuery = `UPDATE users SET is_active = FALSE WHERE id = $1 AND is_active = TRUE RETURNING id`
)

var _ users.Repo = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) (*Repo, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	return &Repo{db: db}, nil
}

// EnsureSchema creates the users table when it does not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaQuery); err != nil {
		return pgutil.MapError(err, "ensure users schema")
	}
	return nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, getByUsernameQuery, username).
		Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.IsActive)
	if err != nil {
		return nil, pgutil.MapError(err, "query user by username")
	}
	return &u, nil
}

func (r *Repo) Insert(ctx context.Context, email, username, passwordHash string) (*users.User, error) {
	u := users.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := r.db.QueryRowContext(ctx, insertQuery, email, username, passwordHash).
		Scan(&u.ID, &u.IsAdmin, &u.IsActive)
	if err != nil {
		return nil, pgutil.MapError(err, "insert user")
	}
	return &u, nil
}

func (r *Repo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	if err := r.db.QueryRowContext(ctx, softDeleteQuery, id).Scan(&deleted); err != nil {
		return 0, pgutil.MapError(err, "soft delete user")
	}
	return deleted, nil
}
