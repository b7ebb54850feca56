package auth

import (
	"fmt"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
)

var (
	UserNotFoundErr           = fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	UserPasswordsDontMatchErr = fmt.Errorf("user passwords not matched: %w", apperrors.ErrBadCredential)
	MissingTokensErr          = fmt.Errorf("no session tokens: %w", apperrors.ErrUnauthorized)
	InvalidAccessTokenErr     = fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrInvalidToken)
)
