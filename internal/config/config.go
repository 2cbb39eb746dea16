package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR" envDefault:":8080"`
	ProjectsSource string        `env:"PROJECTS_SOURCE" envDefault:"assets/data/projects.json"`
	StaticDir      string        `env:"STATIC_DIR" envDefault:"static"`
	ReducedMotion  bool          `env:"REDUCED_MOTION" envDefault:"false"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"0s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON        bool          `env:"LOG_JSON" envDefault:"false"`
	DevMode        bool          `env:"DEV_MODE" envDefault:"false"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the server cannot run with
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.ProjectsSource == "" {
		return fmt.Errorf("projects source is required")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout must not be negative, got %s", c.FetchTimeout)
	}
	return nil
}
