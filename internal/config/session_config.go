package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionConfig holds the token lifecycle settings. The secret and algorithm are
// fixed for the lifetime of the process.
type SessionConfig interface {
	GetSecretKey() string
	GetSigningAlgorithm() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetBcryptCost() int
}

type Session struct {
	SecretKey           string        `env:"SECRET_KEY_TOKEN,required,notEmpty"`
	Algorithm           string        `env:"ALGORITHM"      envDefault:"HS256"`
	AccessExpiryMinutes int           `env:"EXPIRE"         envDefault:"30"`
	RefreshExpiry       time.Duration `env:"REFRESH_EXPIRE" envDefault:"168h"`
	BcryptCost          int           `env:"BCRYPT_COST"    envDefault:"10"`
}

var _ SessionConfig = Session{}

var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

func (s Session) validate() error {
	if _, ok := supportedAlgorithms[s.Algorithm]; !ok {
		return fmt.Errorf("unsupported signing algorithm %q", s.Algorithm)
	}
	if s.AccessExpiryMinutes <= 0 {
		return errors.New("access token expiry must be > 0")
	}
	if s.RefreshExpiry <= 0 {
		return errors.New("refresh token expiry must be > 0")
	}
	if s.BcryptCost < bcrypt.MinCost || s.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func (s Session) GetSecretKey() string {
	return s.SecretKey
}

func (s Session) GetSigningAlgorithm() string {
	return s.Algorithm
}

func (s Session) GetAccessTokenExpiry() time.Duration {
	return time.Duration(s.AccessExpiryMinutes) * time.Minute
}

func (s Session) GetRefreshTokenExpiry() time.Duration {
	return s.RefreshExpiry
}

func (s Session) GetBcryptCost() int {
	return s.BcryptCost
}
