package fakepostrepo

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/posts"
)

var _ posts.Repo = (*FakePostRepo)(nil)

type FakePostRepo struct {
	posts  map[int64]posts.Post
	nextID int64
	lock   sync.RWMutex
}

func NewFakePostRepo() *FakePostRepo {
	return &FakePostRepo{
		posts: make(map[int64]posts.Post),
	}
}

func (pr *FakePostRepo) Create(_ context.Context, input posts.Input, authorID int64) (*posts.Post, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	pr.nextID++
	p := posts.Post{ID: pr.nextID, Title: input.Title, Text: input.Text, AuthorID: authorID}
	pr.posts[p.ID] = p
	return &p, nil
}

func (pr *FakePostRepo) List(_ context.Context) ([]posts.Post, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	all := make([]posts.Post, 0, len(pr.posts))
	for _, p := range pr.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (pr *FakePostRepo) Get(_ context.Context, id int64) (*posts.Post, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	p, ok := pr.posts[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "post %d", id)
	}
	return &p, nil
}

func (pr *FakePostRepo) Update(_ context.Context, id int64, input posts.Input) (*posts.Post, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	p, ok := pr.posts[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "post %d", id)
	}
	p.Title = input.Title
	p.Text = input.Text
	pr.posts[id] = p
	return &p, nil
}

func (pr *FakePostRepo) Delete(_ context.Context, id int64) (*posts.Post, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	p, ok := pr.posts[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "post %d", id)
	}
	delete(pr.posts, id)
	return &p, nil
}
