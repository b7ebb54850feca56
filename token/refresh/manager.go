package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/users"
)

// DefaultRefreshTokenExpiry is the store TTL and cookie Max-Age of a refresh token.
const DefaultRefreshTokenExpiry = 7 * 24 * time.Hour

// RefreshToken pairs the opaque key handed to the client with the identity
// snapshot stored under it.
type RefreshToken struct {
	Key      string
	Identity users.Identity
}

// Manager issues, resolves and revokes refresh tokens.
type Manager struct {
	store   Store
	hasher  users.Hasher
	expiry  time.Duration
	nowFunc func() time.Time
}

type ManagerOption func(*Manager)

func WithExpiry(expiry time.Duration) ManagerOption {
	return func(m *Manager) {
		m.expiry = expiry
	}
}

func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

// NewManager creates a refresh token manager. hasher derives keys; it is the
// same capability used for password digests.
func NewManager(store Store, hasher users.Hasher, options ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] store is required")
	}
	if hasher == nil {
		return nil, errors.New("[NewManager] hasher is required")
	}

	m := &Manager{
		store:   store,
		hasher:  hasher,
		expiry:  DefaultRefreshTokenExpiry,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}

	if m.expiry <= 0 {
		return nil, errors.New("[NewManager] expiry must be > 0")
	}
	return m, nil
}

// Expiry is the lifetime of an issued refresh token.
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// Issue stores a snapshot of identity under a freshly derived key. Key collisions
// are not checked.
func (m *Manager) Issue(ctx context.Context, identity users.Identity) (*RefreshToken, error) {
	key, err := m.hasher.Hash(m.nowFunc().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("[Issue] derive key: %w", err)
	}

	value, err := json.Marshal(identity)
	if err != nil {
		return nil, fmt.Errorf("[Issue] encode identity: %w", err)
	}

	if err := m.store.Set(ctx, key, value, m.expiry); err != nil {
		return nil, apperrors.Unavailable(err, "[Issue] store refresh token")
	}

	return &RefreshToken{Key: key, Identity: identity}, nil
}

// Resolve returns the identity snapshot stored under key. An empty, unknown,
// expired or unreadable key is ErrUnauthorized; a store outage is ErrUnavailable.
func (m *Manager) Resolve(ctx context.Context, key string) (users.Identity, error) {
	if key == "" {
		return users.Identity{}, fmt.Errorf("[Resolve] %w: empty refresh token", apperrors.ErrUnauthorized)
	}

	value, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return users.Identity{}, fmt.Errorf("[Resolve] %w: %w", apperrors.ErrUnauthorized, err)
		}
		return users.Identity{}, apperrors.Unavailable(err, "[Resolve] read refresh token")
	}

	var identity users.Identity
	if err := json.Unmarshal(value, &identity); err != nil {
		return users.Identity{}, fmt.Errorf("[Resolve] %w: corrupt snapshot: %w", apperrors.ErrUnauthorized, err)
	}
	return identity, nil
}

// Revoke deletes key. Revoking an unknown or empty key is not an error.
func (m *Manager) Revoke(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := m.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return apperrors.Unavailable(err, "[Revoke] delete refresh token")
	}
	return nil
}
