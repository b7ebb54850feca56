package server

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/users"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Data         users.Identity `json:"data"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
}

type LogoutResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Detail  string `json:"detail"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// IndexHandler is the unauthenticated liveness endpoint.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Hello World",
			"app":     s.config.GetAppName(),
		})
	}
}

// LoginHandler accepts username and password as JSON, form or query values,
// and sets both session cookies.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeRequest(r, &req, map[string]*string{
			"username": &req.Username,
			"password": &req.Password,
		}); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(w, r, apperrors.Wrapf(apperrors.ErrInvalidRequest, "username and password are required"))
			return
		}

		result, err := s.sessions.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			// unknown user and wrong password look the same from outside
			if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrBadCredential) {
				err = fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
			}
			writeError(w, r, err)
			return
		}

		s.SetAccessTokenCookie(w, r, result.AccessToken)
		s.SetRefreshTokenCookie(w, r, result.RefreshToken)
		writeJSON(w, http.StatusOK, LoginResponse{
			Data:         result.Identity,
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
		})
	}
}

// LogoutHandler always succeeds and clears both cookies.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.Logout(r.Context(), cookieValue(r, refreshTokenCookie))
		s.ClearSessionCookies(w, r)
		writeJSON(w, http.StatusOK, LogoutResponse{
			Message: "Session has been deleted",
			Detail:  "All cookies deleted",
		})
	}
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeRequest(r, &req, map[string]*string{
			"email":    &req.Email,
			"username": &req.Username,
			"password": &req.Password,
		}); err != nil {
			writeError(w, r, err)
			return
		}

		identity, err := s.users.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, identity)
	}
}
