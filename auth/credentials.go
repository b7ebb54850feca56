package auth

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/users"
)

// CredentialVerifier checks a username and password against the user store.
type CredentialVerifier struct {
	users  users.Repo
	hasher users.Hasher
}

func NewCredentialVerifier(repo users.Repo, hasher users.Hasher) (*CredentialVerifier, error) {
	if repo == nil {
		return nil, errors.New("[NewCredentialVerifier] users repo is required")
	}
	if hasher == nil {
		return nil, errors.New("[NewCredentialVerifier] hasher is required")
	}
	return &CredentialVerifier{users: repo, hasher: hasher}, nil
}

// Verify returns the identity for username when password matches its digest.
// Unknown and deactivated users both fail with UserNotFoundErr.
func (cv *CredentialVerifier) Verify(ctx context.Context, username, password string) (users.Identity, error) {
	user, err := cv.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return users.Identity{}, fmt.Errorf("[Verify] %q: %w", username, UserNotFoundErr)
		}
		return users.Identity{}, fmt.Errorf("[Verify] %w", err)
	}
	if !user.IsActive {
		return users.Identity{}, fmt.Errorf("[Verify] %q inactive: %w", username, UserNotFoundErr)
	}

	if !cv.hasher.Verify(password, user.PasswordHash) {
		return users.Identity{}, fmt.Errorf("[Verify] %q: %w", username, UserPasswordsDontMatchErr)
	}
	return user.Identity(), nil
}
