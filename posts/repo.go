package posts

import "context"

// Repo is the persistence collaborator for posts. Get, Update and Delete return
// errors.ErrNotFound for an unknown id; storage failures are errors.ErrUnavailable.
type Repo interface {
	Create(ctx context.Context, input Input, authorID int64) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, input Input) (*Post, error)
	Delete(ctx context.Context, id int64) (*Post, error)
}
