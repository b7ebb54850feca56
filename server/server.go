package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-session-server/auth"
	"github.com/jrsteele09/go-session-server/internal/config"
	"github.com/jrsteele09/go-session-server/posts"
	"github.com/jrsteele09/go-session-server/token"
	"github.com/jrsteele09/go-session-server/token/jwt"
	"github.com/jrsteele09/go-session-server/token/refresh"
	"github.com/jrsteele09/go-session-server/users"
	"github.com/rs/zerolog/log"
)

// Repos holds the storage the server is built on.
type Repos struct {
	Users        users.Repo
	Posts        posts.Repo
	RefreshStore refresh.Store
}

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	preflight http.HandlerFunc
	routes    []string
	config    config.Config
	sessions  *auth.SessionManager
	users     *users.Service
	posts     *posts.Service
	nowFunc   func() time.Time
}

type Option func(*Server)

// WithNowFunc sets the clock used for token issue and expiry (primarily for testing)
func WithNowFunc(now func() time.Time) Option {
	return func(s *Server) {
		s.nowFunc = now
	}
}

func New(cfg config.Config, repos Repos, options ...Option) (*Server, error) {
	if repos.Users == nil {
		return nil, errors.New("[Server New] Users repo is required")
	}
	if repos.Posts == nil {
		return nil, errors.New("[Server New] Posts repo is required")
	}
	if repos.RefreshStore == nil {
		return nil, errors.New("[Server New] RefreshStore is required")
	}

	s := &Server{
		env:     cfg.GetEnv(),
		mux:     http.NewServeMux(),
		config:  cfg,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}

	if err := s.initServices(repos); err != nil {
		return nil, fmt.Errorf("[Server New] %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) initServices(repos Repos) error {
	hasher := users.NewBcryptHasher(s.config.GetBcryptCost())

	signer, err := token.NewHMACSigner(s.config.GetSigningAlgorithm(), s.config.GetSecretKey())
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}

	codec, err := jwt.NewCodec(signer,
		jwt.WithDefaultExpiry(s.config.GetAccessTokenExpiry()),
		jwt.WithNowFunc(s.nowFunc),
	)
	if err != nil {
		return fmt.Errorf("failed to create token codec: %w", err)
	}

	refreshTokens, err := refresh.NewManager(repos.RefreshStore, hasher,
		refresh.WithExpiry(s.config.GetRefreshTokenExpiry()),
		refresh.WithNowFunc(s.nowFunc),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token manager: %w", err)
	}

	verifier, err := auth.NewCredentialVerifier(repos.Users, hasher)
	if err != nil {
		return err
	}

	if s.sessions, err = auth.NewSessionManager(verifier, codec, refreshTokens); err != nil {
		return err
	}
	if s.users, err = users.NewService(repos.Users, hasher); err != nil {
		return err
	}
	if s.posts, err = posts.NewService(repos.Posts); err != nil {
		return err
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		s.preflight(w, r)
		return
	}
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	color, ok := methodColors[method]
	if !ok {
		color = Gray
	}
	log.Info().Msgf("[%-19s] %s", color+paddedMethod+ResetColor, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
