package main

import (
	"log/slog"
	"time"
)

type auraConfig struct {
	BaseURL     string        `env:"AURA_BASE_URL" default:"http://localhost:8080"`
	HTTPTimeout time.Duration `env:"AURA_HTTP_TIMEOUT" default:"10s"`
	// PrefsDir holds the badger store. Empty means <user config dir>/aura.
	PrefsDir         string        `env:"AURA_PREFS_DIR" default:""`
	LogFile          string        `env:"AURA_LOG_FILE" default:"aura.log"`
	LogLevel         slog.Level    `env:"AURA_LOG_LEVEL" default:"INFO"`
	ResetDelay       time.Duration `env:"AURA_RESET_DELAY" default:"500ms"`
	SimulatedLatency time.Duration `env:"AURA_SIMULATED_LATENCY" default:""`
	ShutdownTimeout  time.Duration `env:"AURA_SHUTDOWN_TIMEOUT" default:"5s"`
}
