package config

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// NewLogger builds the root application logger from the configuration
func (c *Config) NewLogger(out io.Writer) hclog.Logger {
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "portfolio",
		Level:      level,
		Output:     out,
		JSONFormat: c.LogJSON,
	})
}
