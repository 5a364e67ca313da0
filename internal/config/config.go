// Package config holds the configuration blocks shared between binaries.
package config

import (
	"log/slog"
	"time"
)

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" default:"5"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" default:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" default:"30m"`
}

// AppConfig is common to every server-side binary.
type AppConfig struct {
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL" default:"INFO"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
}
