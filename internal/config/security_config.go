package config

type SecurityConfig interface {
	GetSecureCookies() bool
}

type Security struct {
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`
}

var _ SecurityConfig = Security{}

// GetSecureCookies forces the Secure attribute on session cookies. When false the
// attribute follows the request scheme.
func (s Security) GetSecureCookies() bool {
	return s.SecureCookies
}
