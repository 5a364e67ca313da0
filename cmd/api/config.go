package main

import "github.com/fastprodman/aura/internal/config"

type apiConfig struct {
	config.AppConfig
	Port     uint16 `env:"APP_PORT" default:"8080"`
	Postgres config.PostgresConfig
}
