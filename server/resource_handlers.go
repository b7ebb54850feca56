package server

import (
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-session-server/authz"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/posts"
	"github.com/jrsteele09/go-session-server/users"
)

type DeletePostResponse struct {
	Status string     `json:"status"`
	Data   posts.View `json:"data"`
	Detail string     `json:"detail"`
}

type DeactivateUserResponse struct {
	ID int64 `json:"id"`
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidRequest, "invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// DeactivateUserHandler soft deletes a user. Users may deactivate themselves;
// admins may deactivate anyone.
func (s *Server) DeactivateUserHandler() ProtectedHandler {
	return func(r *http.Request, identity users.Identity) (int, any, error) {
		id, err := pathID(r)
		if err != nil {
			return 0, nil, err
		}
		if err := authz.RequireMutate(identity, id); err != nil {
			return 0, nil, err
		}
		deleted, err := s.users.Deactivate(r.Context(), id)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, DeactivateUserResponse{ID: deleted}, nil
	}
}

func (s *Server) CreatePostHandler() ProtectedHandler {
	return func(r *http.Request, identity users.Identity) (int, any, error) {
		var input posts.Input
		if err := decodeJSON(r, &input); err != nil {
			return 0, nil, err
		}
		view, err := s.posts.Create(r.Context(), identity, input)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, view, nil
	}
}

func (s *Server) ListPostsHandler() ProtectedHandler {
	return func(r *http.Request, identity users.Identity) (int, any, error) {
		views, err := s.posts.List(r.Context(), identity)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, views, nil
	}
}

func (s *Server) GetPostHandler() ProtectedHandler {
	return func(r *http.Request, identity users.Identity) (int, any, error) {
		id, err := pathID(r)
		if err != nil {
			return 0, nil, err
		}
		view, err := s.posts.Get(r.Context(), identity, id)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, view, nil
	}
}

func (s *Server) EditPostHandler() ProtectedHandler {
	return func(r *http.Request, identity users.Identity) (int, any, error) {
		id, err := pathID(r)
		if err != nil {
			return 0, nil, err
		}
		var input posts.Input
		if err := decodeJSON(r, &input); err != nil {
			return 0, nil, err
		}
		view, err := s.posts.Edit(r.Context(), identity, id, input)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, view, nil
	}
}

func (s *Server) DeletePostHandler() ProtectedHandler {
	return func(r *http.Request, identity users.Identity) (int, any, error) {
		id, err := pathID(r)
		if err != nil {
			return 0, nil, err
		}
		deleted, err := s.posts.Delete(r.Context(), identity, id)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, DeletePostResponse{
			Status: "Access done",
			Data:   posts.View{Post: deleted, CanEdit: true},
			Detail: "Post deleted",
		}, nil
	}
}
