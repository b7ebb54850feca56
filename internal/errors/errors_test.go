package errors_test

import (
	stderrors "errors"
	"testing"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	require.NoError(t, apperrors.Wrapf(nil, "context"))

	err := apperrors.Wrapf(apperrors.ErrNotFound, "post %d", 7)
	require.EqualError(t, err, "post 7: not found")
	require.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestUnavailable(t *testing.T) {
	require.NoError(t, apperrors.Unavailable(nil, "redis set"))

	cause := stderrors.New("connection refused")
	err := apperrors.Unavailable(cause, "redis %s", "set")

	require.True(t, apperrors.Is(err, apperrors.ErrUnavailable))
	require.True(t, apperrors.Is(err, cause))
	require.Contains(t, err.Error(), "redis set")
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unavailable", apperrors.Unavailable(stderrors.New("down"), "db"), true},
		{"unauthorized", apperrors.ErrUnauthorized, false},
		{"conflict", apperrors.Wrapf(apperrors.ErrConflict, "insert"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, apperrors.Retryable(tt.err))
		})
	}
}
