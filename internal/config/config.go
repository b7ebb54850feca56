package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config interface {
	EnvConfig
	SessionConfig
	StoreConfig
	CorsConfig
	SecurityConfig
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Session
	Store
	Cors
	Security
}

// Load reads the process configuration from the environment. It is called once
// at start-up; the returned value is never mutated afterwards.
func Load() (Config, error) {
	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	return c, nil
}
