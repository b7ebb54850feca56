package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/jrsteele09/go-session-server/token"
	"github.com/jrsteele09/go-session-server/users"
)

// DefaultAccessTokenExpiry is used when EncodeAccess is given a zero ttl.
const DefaultAccessTokenExpiry = 30 * time.Minute

// Claims is the access-token claim set.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwtlib.RegisteredClaims
}

// Identity rebuilds the identity snapshot carried by the token. Access tokens are
// only minted for active users, and the token carries no email.
func (c *Claims) Identity() users.Identity {
	return users.Identity{
		ID:       c.UserID,
		Username: c.Username,
		IsAdmin:  c.IsAdmin,
		IsActive: true,
	}
}

// Codec encodes and verifies access tokens. It holds no server-side state: a
// token is valid iff its signature checks out and it has not expired.
type Codec struct {
	signer        token.Signer
	defaultExpiry time.Duration
	nowFunc       func() time.Time
}

type CodecOption func(*Codec)

// WithNowFunc sets the clock (primarily for testing)
func WithNowFunc(now func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowFunc = now
	}
}

// WithDefaultExpiry overrides DefaultAccessTokenExpiry.
func WithDefaultExpiry(ttl time.Duration) CodecOption {
	return func(c *Codec) {
		c.defaultExpiry = ttl
	}
}

func NewCodec(signer token.Signer, options ...CodecOption) (*Codec, error) {
	if signer == nil {
		return nil, errors.New("[NewCodec] signer is required")
	}

	c := &Codec{
		signer:        signer,
		defaultExpiry: DefaultAccessTokenExpiry,
		nowFunc:       time.Now,
	}
	for _, opt := range options {
		opt(c)
	}

	if c.defaultExpiry <= 0 {
		return nil, errors.New("[NewCodec] default expiry must be > 0")
	}
	return c, nil
}

// DefaultExpiry is the lifetime of tokens minted with a zero ttl.
func (c *Codec) DefaultExpiry() time.Duration {
	return c.defaultExpiry
}

// EncodeAccess signs {user_id, username, is_admin, exp = now+ttl}.
func (c *Codec) EncodeAccess(identity users.Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.defaultExpiry
	}

	now := c.nowFunc()
	claims := &Claims{
		UserID:   identity.ID,
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := c.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("[EncodeAccess] %w", err)
	}
	return signed, nil
}

// DecodeAccess verifies the signature, algorithm and expiry of raw. It fails with
// errors.ErrTokenExpired for a genuine but expired token and with
// errors.ErrInvalidSignature for anything else. It never renews.
func (c *Codec) DecodeAccess(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(raw, claims, c.signer.GetVerificationKey,
		jwtlib.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(c.nowFunc),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidSignature, err)
	}
	if !parsed.Valid {
		return nil, apperrors.ErrInvalidSignature
	}
	return claims, nil
}
