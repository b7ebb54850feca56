// Package authz decides what a verified identity may do with a resource it may
// or may not own. Reads degrade to a can-edit flag; writes are rejected.
package authz

import (
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/users"
)

// Decision is the outcome of checking an identity against a resource owner.
type Decision struct {
	Allowed bool `json:"allowed"`
	CanEdit bool `json:"can_edit"`
}

// CanAccess allows the owner of the resource and any admin.
func CanAccess(identity users.Identity, ownerID int64) Decision {
	ok := identity.ID == ownerID || identity.IsAdmin
	return Decision{Allowed: ok, CanEdit: ok}
}

// RequireMutate is the hard-deny variant used by edit and delete paths.
func RequireMutate(identity users.Identity, ownerID int64) error {
	if !CanAccess(identity, ownerID).Allowed {
		return apperrors.Wrapf(apperrors.ErrForbidden, "user %d may not modify resource owned by %d", identity.ID, ownerID)
	}
	return nil
}
