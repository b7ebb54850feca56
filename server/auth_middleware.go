package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-session-server/auth"
	"github.com/jrsteele09/go-session-server/users"
	"github.com/rs/zerolog"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyIdentity stores the verified users.Identity
const ContextKeyIdentity ContextKey = "identity"

// ProtectedHandler serves a request on behalf of a verified identity. It returns
// the success status and body, or an error from the errors taxonomy.
type ProtectedHandler func(r *http.Request, identity users.Identity) (int, any, error)

// IdentityFromContext returns the identity injected by WithAuth.
func IdentityFromContext(ctx context.Context) (users.Identity, bool) {
	identity, ok := ctx.Value(ContextKeyIdentity).(users.Identity)
	return identity, ok
}

func sessionCookies(r *http.Request) auth.Cookies {
	return auth.Cookies{
		Access:  cookieValue(r, accessTokenCookie),
		Refresh: cookieValue(r, refreshTokenCookie),
	}
}

// WithAuth verifies the session cookies before calling handler. When the access
// token was renewed the new token is set as a cookie and the body is wrapped by
// ShapeResponse. A failing handler gets no new cookie.
func (s *Server) WithAuth(handler ProtectedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verification, err := s.sessions.Verify(r.Context(), sessionCookies(r))
		if err != nil {
			zerolog.Ctx(r.Context()).Info().
				Stringer("session_state", verification.State).
				Msg("session rejected")
			writeError(w, r, err)
			return
		}

		logger := zerolog.Ctx(r.Context()).With().Int64("user_id", verification.Identity.ID).Logger()
		ctx := context.WithValue(logger.WithContext(r.Context()), ContextKeyIdentity, verification.Identity)
		r = r.WithContext(ctx)

		status, body, err := handler(r, verification.Identity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if verification.Renewed() {
			s.SetAccessTokenCookie(w, r, verification.NewAccessToken)
		}
		writeJSON(w, status, ShapeResponse(body, verification.NewAccessToken))
	}
}
