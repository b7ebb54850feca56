package users

import "context"

// Repo is the persistence collaborator for user records.
//
// GetByUsername is a case-sensitive exact match and returns errors.ErrNotFound when
// absent. Insert returns errors.ErrConflict on a duplicate email or username.
// SoftDelete flips is_active and returns errors.ErrNotFound unless the user is
// still active. Any other failure is wrapped as errors.ErrUnavailable.
type Repo interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, email, username, passwordHash string) (*User, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
}
