package server_test

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/server"
	"github.com/stretchr/testify/require"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestShapeResponse(t *testing.T) {
	body := map[string]string{"k": "v"}

	require.Equal(t, body, server.ShapeResponse(body, ""))

	shaped, ok := server.ShapeResponse(body, "new-token").(server.RenewedResponse)
	require.True(t, ok)
	require.Equal(t, "New token has been created", shaped.TokenResponse.Message)
	require.Equal(t, "new-token", shaped.TokenResponse.AccessToken)
	require.Equal(t, body, shaped.BodyResponse)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"unavailable", apperrors.Unavailable(errors.New("dial"), "db"), http.StatusServiceUnavailable, "Try again later"},
		{"invalid token", fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrInvalidToken), http.StatusUnauthorized, "Invalid token"},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"bad credential", apperrors.ErrBadCredential, http.StatusUnauthorized, "Unauthorized"},
		{"login not found", fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrNotFound), http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", apperrors.Wrapf(apperrors.ErrForbidden, "post 1"), http.StatusForbidden, "Forbidden"},
		{"invalid request", apperrors.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound, "does not exist"},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, "Already exists"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := server.ErrorStatus(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.detail, body.Detail)
			require.Nil(t, body.Data)
		})
	}
}
