package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// StoreConfig locates the relational database and the refresh-token key-value store.
type StoreConfig interface {
	GetDatabaseDSN() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
}

type Store struct {
	DBHost    string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort    int    `env:"DB_PORT"     envDefault:"5432"`
	DBName    string `env:"DB_NAME"     envDefault:"posts"`
	DBUser    string `env:"DB_USER"     envDefault:"postgres"`
	DBPass    string `env:"DB_PASS"     envDefault:"postgres"`
	DBSSLMode string `env:"DB_SSL_MODE" envDefault:"disable"`

	RedisHost     string `env:"REDIS_HOST"     envDefault:"localhost"`
	RedisPort     int    `env:"REDIS_PORT"     envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
}

var _ StoreConfig = Store{}

func (s Store) GetDatabaseDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.DBUser, s.DBPass),
		Host:     net.JoinHostPort(s.DBHost, strconv.Itoa(s.DBPort)),
		Path:     "/" + s.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(s.DBSSLMode)),
	}
	return dsn.String()
}

func (s Store) GetRedisAddr() string {
	return net.JoinHostPort(s.RedisHost, strconv.Itoa(s.RedisPort))
}

func (s Store) GetRedisPassword() string {
	return s.RedisPassword
}

func (s Store) GetRedisDB() int {
	return s.RedisDB
}
