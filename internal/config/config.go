package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server struct {
		Port               string `envconfig:"PORT" default:"3000"`
		LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
		GracePeriodSeconds int    `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
	} `envconfig:"SERVER"`

	Mongo struct {
		URI      string `envconfig:"URI" default:"mongodb://127.0.0.1:27017"`
		Database string `envconfig:"DATABASE" default:"hallbook"`
	} `envconfig:"MONGO"`

	CORS struct {
		Enable           bool     `envconfig:"ENABLE" default:"true"`
		AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
		AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
		AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"*"`
		AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"true"`
	} `envconfig:"CORS"`
}

// Load reads configuration from the environment, after first loading a .env
// file if one is present next to the binary.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("HALLBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}
