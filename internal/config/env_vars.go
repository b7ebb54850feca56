package config

import (
	"strings"
	"time"
)

// EnvConfig covers process-level settings.
type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetReadTimeout() time.Duration
	GetWriteTimeout() time.Duration
	GetShutdownTimeout() time.Duration
}

type EnvVars struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	AppName         string        `env:"APP_NAME"         envDefault:"Go Session Server"`
	Env             string        `env:"ENV"              envDefault:"DEV"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	if strings.HasPrefix(e.Port, ":") {
		return e.Port
	}
	return ":" + e.Port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	if e.Env == "" {
		return "DEV"
	}
	return strings.ToUpper(e.Env)
}

func (e EnvVars) GetLogLevel() string {
	return e.LogLevel
}

func (e EnvVars) GetReadTimeout() time.Duration {
	return e.ReadTimeout
}

func (e EnvVars) GetWriteTimeout() time.Duration {
	return e.WriteTimeout
}

func (e EnvVars) GetShutdownTimeout() time.Duration {
	return e.ShutdownTimeout
}
