package server

import (
	"net/http"
	"time"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

func (s *Server) secureCookies(r *http.Request) bool {
	return s.config.GetSecureCookies() || getScheme(r) == "https"
}

func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// SetAccessTokenCookie lives exactly as long as the token, so the browser stops
// sending it once it has expired.
func (s *Server) SetAccessTokenCookie(w http.ResponseWriter, r *http.Request, accessToken string) {
	s.setSessionCookie(w, r, accessTokenCookie, accessToken, s.sessions.AccessTokenExpiry())
}

func (s *Server) SetRefreshTokenCookie(w http.ResponseWriter, r *http.Request, refreshToken string) {
	s.setSessionCookie(w, r, refreshTokenCookie, refreshToken, s.sessions.RefreshTokenExpiry())
}

func (s *Server) ClearSessionCookies(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   s.secureCookies(r),
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
