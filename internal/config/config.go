// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the participant API configuration. Variables are read with
// the PARTICIPANT_API_ prefix, e.g. PARTICIPANT_API_PORT.
type Config struct {
	// Port the HTTP server listens on.
	Port int `envconfig:"PORT" default:"3000"`

	// StaticDir optionally serves the front-end asset directory at /.
	StaticDir string `envconfig:"STATIC_DIR" default:""`

	// Build metadata surfaced on /version.
	Commit    string `envconfig:"COMMIT" default:""`
	BuildTime string `envconfig:"BUILD_TIME" default:""`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PARTICIPANT_API", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server listen address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
