package authz_test

import (
	"testing"

	"github.com/jrsteele09/go-session-server/authz"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/users"
	"github.com/stretchr/testify/require"
)

func TestCanAccess(t *testing.T) {
	alice := users.Identity{ID: 1, Username: "alice"}
	admin := users.Identity{ID: 9, Username: "root", IsAdmin: true}

	tests := []struct {
		name     string
		identity users.Identity
		ownerID  int64
		want     authz.Decision
	}{
		{"owner", alice, 1, authz.Decision{Allowed: true, CanEdit: true}},
		{"non owner", alice, 2, authz.Decision{Allowed: false, CanEdit: false}},
		{"admin on own resource", admin, 9, authz.Decision{Allowed: true, CanEdit: true}},
		{"admin on foreign resource", admin, 2, authz.Decision{Allowed: true, CanEdit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, authz.CanAccess(tt.identity, tt.ownerID))
		})
	}
}

func TestRequireMutate(t *testing.T) {
	alice := users.Identity{ID: 1}

	require.NoError(t, authz.RequireMutate(alice, 1))
	require.NoError(t, authz.RequireMutate(users.Identity{ID: 5, IsAdmin: true}, 1))

	err := authz.RequireMutate(alice, 2)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}
