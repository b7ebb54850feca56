package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrsteele09/go-session-server/authz"
	"github.com/jrsteele09/go-session-server/users"
)

type Service struct {
	repo Repo
}

func NewService(repo Repo) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[posts.NewService] repo is required")
	}
	return &Service{repo: repo}, nil
}

func view(identity users.Identity, p Post) View {
	return View{Post: p, CanEdit: authz.CanAccess(identity, p.AuthorID).CanEdit}
}

// Create stores a post authored by identity.
func (s *Service) Create(ctx context.Context, identity users.Identity, input Input) (View, error) {
	if err := input.Validate(); err != nil {
		return View{}, fmt.Errorf("[Create] %w", err)
	}
	p, err := s.repo.Create(ctx, input, identity.ID)
	if err != nil {
		return View{}, fmt.Errorf("[Create] %w", err)
	}
	return view(identity, *p), nil
}

// List returns every post, each flagged with whether identity may edit it.
func (s *Service) List(ctx context.Context, identity users.Identity) ([]View, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("[List] %w", err)
	}
	views := make([]View, 0, len(all))
	for _, p := range all {
		views = append(views, view(identity, p))
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, identity users.Identity, id int64) (View, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, fmt.Errorf("[Get] %w", err)
	}
	return view(identity, *p), nil
}

// Edit replaces title and text. Only the author or an admin may edit.
func (s *Service) Edit(ctx context.Context, identity users.Identity, id int64, input Input) (View, error) {
	if err := input.Validate(); err != nil {
		return View{}, fmt.Errorf("[Edit] %w", err)
	}
	if err := s.authorize(ctx, identity, id); err != nil {
		return View{}, fmt.Errorf("[Edit] %w", err)
	}
	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return View{}, fmt.Errorf("[Edit] %w", err)
	}
	return view(identity, *p), nil
}

// Delete removes the post and returns it. Only the author or an admin may delete.
func (s *Service) Delete(ctx context.Context, identity users.Identity, id int64) (Post, error) {
	if err := s.authorize(ctx, identity, id); err != nil {
		return Post{}, fmt.Errorf("[Delete] %w", err)
	}
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Post{}, fmt.Errorf("[Delete] %w", err)
	}
	return *p, nil
}

func (s *Service) authorize(ctx context.Context, identity users.Identity, id int64) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	return authz.RequireMutate(identity, current.AuthorID)
}
