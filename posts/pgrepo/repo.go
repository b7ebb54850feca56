// Package pgrepo stores posts in PostgreSQL through database/sql.
package pgrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jrsteele09/go-session-server/internal/pgutil"
	"github.com/jrsteele09/go-session-server/posts"
)

const (
	schemaQuery = `
CREATE TABLE IF NOT EXISTS posts (
	id SERIAL PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	text VARCHAR(4000) NOT NULL,
	author_id INTEGER NOT NULL REFERENCES users (id)
)`

	createQuery = `INSERT INTO posts (title, text, author_id) VALUES ($1, $2, $3) RETURNING id`

	listQuery = `SELECT id, title, text, author_id FROM posts ORDER BY id`

	getQuery = `SELECT id, title, text, author_id FROM posts WHERE id = $1`

	updateQuery = `UPDATE posts SET title = $2, text = $3 WHERE id = $1 RETURNING id, title, text, author_id`

	deleteQuery = `DELETE FROM posts WHERE id = $1 RETURNING id, title, text, author_id`
)

var _ posts.Repo = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) (*Repo, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	return &Repo{db: db}, nil
}

// EnsureSchema creates the posts table. The users table must exist first.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaQuery); err != nil {
		return pgutil.MapError(err, "ensure posts schema")
	}
	return nil
}

func (r *Repo) Create(ctx context.Context, input posts.Input, authorID int64) (*posts.Post, error) {
	p := posts.Post{Title: input.Title, Text: input.Text, AuthorID: authorID}
	if err := r.db.QueryRowContext(ctx, createQuery, input.Title, input.Text, authorID).Scan(&p.ID); err != nil {
		return nil, pgutil.MapError(err, "insert post")
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context) ([]posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, pgutil.MapError(err, "list posts")
	}
	defer rows.Close()

	all := make([]posts.Post, 0)
	for rows.Next() {
		var p posts.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.AuthorID); err != nil {
			return nil, pgutil.MapError(err, "scan post")
		}
		all = append(all, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pgutil.MapError(err, "iterate posts")
	}
	return all, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*posts.Post, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, getQuery, id), "get post")
}

func (r *Repo) Update(ctx context.Context, id int64, input posts.Input) (*posts.Post, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, updateQuery, id, input.Title, input.Text), "update post")
}

func (r *Repo) Delete(ctx context.Context, id int64) (*posts.Post, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, deleteQuery, id), "delete post")
}

func (r *Repo) scanOne(row *sql.Row, op string) (*posts.Post, error) {
	var p posts.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Text, &p.AuthorID); err != nil {
		return nil, pgutil.MapError(err, op)
	}
	return &p, nil
}
