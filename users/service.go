package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
)

const (
	maxUsernameLength = 50
	maxPasswordBytes  = 72 // bcrypt input limit
)

// Service holds the user operations that sit next to the session layer:
// registration and soft delete.
type Service struct {
	repo   Repo
	hasher Hasher
}

func NewService(repo Repo, hasher Hasher) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[users.NewService] repo is required")
	}
	if hasher == nil {
		return nil, errors.New("[users.NewService] hasher is required")
	}
	return &Service{repo: repo, hasher: hasher}, nil
}

// Register creates an active, non-admin user. Duplicate email or username
// surfaces as errors.ErrConflict.
func (s *Service) Register(ctx context.Context, email, username, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	if err := ValidateRegistration(email, username, password); err != nil {
		return Identity{}, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return Identity{}, fmt.Errorf("[Register] hash password: %w", err)
	}

	user, err := s.repo.Insert(ctx, email, username, digest)
	if err != nil {
		return Identity{}, fmt.Errorf("[Register] %w", err)
	}
	return user.Identity(), nil
}

// Deactivate soft deletes the user. Callers are expected to have checked that
// the requester may do so.
func (s *Service) Deactivate(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("[Deactivate] user %d: %w", id, err)
	}
	return deleted, nil
}

// ValidateRegistration checks the shape of a registration request.
func ValidateRegistration(email, username, password string) error {
	if email == "" || username == "" || password == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "email, username and password are required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "invalid email address")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "username must be at most %d characters", maxUsernameLength)
	}
	if strings.TrimSpace(username) != username {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "username must not start or end with whitespace")
	}
	if len(password) > maxPasswordBytes {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}
