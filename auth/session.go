package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrsteele09/go-session-server/token/jwt"
	"github.com/jrsteele09/go-session-server/token/refresh"
	"github.com/jrsteele09/go-session-server/users"
	"github.com/rs/zerolog"
)

// State is the outcome of verifying a request's session cookies.
type State int

const (
	StateNoTokens State = iota
	StateAccessValid
	StateAccessInvalidRefreshValid
	StateRefreshAlsoInvalid
	// StateAccessRejected is an access cookie that is present but expired or
	// tampered. The refresh cookie is not consulted.
	StateAccessRejected
)

func (s State) String() string {
	switch s {
	case StateNoTokens:
		return "NO_TOKENS"
	case StateAccessValid:
		return "ACCESS_VALID"
	case StateAccessInvalidRefreshValid:
		return "ACCESS_INVALID_REFRESH_VALID"
	case StateRefreshAlsoInvalid:
		return "REFRESH_ALSO_INVALID"
	case StateAccessRejected:
		return "ACCESS_REJECTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cookies carries the raw session cookie values of a request. Empty means absent.
type Cookies struct {
	Access  string
	Refresh string
}

// Verification is the result of SessionManager.Verify.
type Verification struct {
	State    State
	Identity users.Identity
	// AccessToken is the token the request is authenticated with.
	AccessToken string
	// NewAccessToken is set when the token was minted during this request and
	// must be handed back to the client.
	NewAccessToken string
}

func (v *Verification) Renewed() bool {
	return v.NewAccessToken != ""
}

type LoginResult struct {
	Identity     users.Identity
	AccessToken  string
	RefreshToken string
}

// SessionManager runs login, logout and per-request verification.
type SessionManager struct {
	credentials   *CredentialVerifier
	codec         *jwt.Codec
	refreshTokens *refresh.Manager
	accessExpiry  time.Duration
}

type SessionManagerOption func(*SessionManager)

// WithAccessTokenExpiry sets the lifetime of access tokens minted on login and renewal.
func WithAccessTokenExpiry(expiry time.Duration) SessionManagerOption {
	return func(sm *SessionManager) {
		sm.accessExpiry = expiry
	}
}

func NewSessionManager(
	credentials *CredentialVerifier,
	codec *jwt.Codec,
	refreshTokens *refresh.Manager,
	options ...SessionManagerOption,
) (*SessionManager, error) {
	if credentials == nil {
		return nil, errors.New("[NewSessionManager] credential verifier is required")
	}
	if codec == nil {
		return nil, errors.New("[NewSessionManager] token codec is required")
	}
	if refreshTokens == nil {
		return nil, errors.New("[NewSessionManager] refresh token manager is required")
	}

	sm := &SessionManager{
		credentials:   credentials,
		codec:         codec,
		refreshTokens: refreshTokens,
		accessExpiry:  codec.DefaultExpiry(),
	}
	for _, opt := range options {
		opt(sm)
	}

	if sm.accessExpiry <= 0 {
		return nil, errors.New("[NewSessionManager] access token expiry must be > 0")
	}
	return sm, nil
}

func (sm *SessionManager) AccessTokenExpiry() time.Duration {
	return sm.accessExpiry
}

func (sm *SessionManager) RefreshTokenExpiry() time.Duration {
	return sm.refreshTokens.Expiry()
}

// Login verifies the credentials and issues both tokens from the same identity.
// Nothing is returned unless both tokens were issued.
func (sm *SessionManager) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	identity, err := sm.credentials.Verify(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("[Login] %w", err)
	}

	accessToken, err := sm.codec.EncodeAccess(identity, sm.accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("[Login] %w", err)
	}

	refreshToken, err := sm.refreshTokens.Issue(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("[Login] %w", err)
	}

	return &LoginResult{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Key,
	}, nil
}

// Logout revokes the refresh token. Failures are logged and otherwise ignored.
func (sm *SessionManager) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	if err := sm.refreshTokens.Revoke(ctx, refreshToken); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("refresh token revoke failed")
	}
}

// Verify authenticates a request from its cookies.
//
// A present access cookie is decoded and either accepted or rejected outright;
// an expired one does not fall back to the refresh cookie. Only a missing access
// cookie triggers renewal, and renewal never rotates the refresh token.
// A refresh store outage is returned as errors.ErrUnavailable.
func (sm *SessionManager) Verify(ctx context.Context, cookies Cookies) (*Verification, error) {
	if cookies.Access != "" {
		claims, err := sm.codec.DecodeAccess(cookies.Access)
		if err != nil {
			return &Verification{State: StateAccessRejected}, fmt.Errorf("[Verify] %w: %w", InvalidAccessTokenErr, err)
		}
		return &Verification{
			State:       StateAccessValid,
			Identity:    claims.Identity(),
			AccessToken: cookies.Access,
		}, nil
	}

	if cookies.Refresh == "" {
		return &Verification{State: StateNoTokens}, fmt.Errorf("[Verify] %w", MissingTokensErr)
	}

	identity, err := sm.refreshTokens.Resolve(ctx, cookies.Refresh)
	if err != nil {
		return &Verification{State: StateRefreshAlsoInvalid}, fmt.Errorf("[Verify] %w", err)
	}

	accessToken, err := sm.codec.EncodeAccess(identity, sm.accessExpiry)
	if err != nil {
		return &Verification{State: StateRefreshAlsoInvalid}, fmt.Errorf("[Verify] renew: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int64("user_id", identity.ID).Msg("access token renewed")
	return &Verification{
		State:          StateAccessInvalidRefreshValid,
		Identity:       identity,
		AccessToken:    accessToken,
		NewAccessToken: accessToken,
	}, nil
}
