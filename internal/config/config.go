package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig drives the CLI and the sync layer. Defaults mirror the
// mobile client's hardcoded values so a bare environment works against
// a local server.
type ClientConfig struct {
	BaseURL            string        `env:"ENDOCARE_BASE_URL" envDefault:"http://localhost:3001"`
	RequestTimeout     time.Duration `env:"ENDOCARE_REQUEST_TIMEOUT" envDefault:"10s"`
	HealthCheckTimeout time.Duration `env:"ENDOCARE_HEALTH_TIMEOUT" envDefault:"2s"`
	MaxRetries         int           `env:"ENDOCARE_MAX_RETRIES" envDefault:"3"`
	LogMode            string        `env:"ENDOCARE_LOG_MODE" envDefault:"dev"`
}

// ServerConfig drives the backend binary.
type ServerConfig struct {
	Port    string `env:"PORT" envDefault:"3001"`
	DBPath  string `env:"DB_PATH" envDefault:"data/endocare.db"`
	LogMode string `env:"ENDOCARE_LOG_MODE" envDefault:"dev"`
}

func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}
