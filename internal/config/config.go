// Package config defines the aggregate application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/uibrahim/product-api/pkg/config"
	"github.com/uibrahim/product-api/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Auth       config.AuthConfig      `koanf:"auth"`
	RateLimit  config.RateLimitConfig `koanf:"ratelimit"`
	Log        config.LogConfig       `koanf:"log"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
}

// Defaults returns the built-in configuration so a bare environment boots on
// port 3000 with the development API key.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":               3000,
		"server.maxHeaderBytes":     1 << 20,
		"server.timeout.read":       5 * time.Second,
		"server.timeout.write":      10 * time.Second,
		"server.timeout.idle":       60 * time.Second,
		"server.timeout.readHeader": 5 * time.Second,
		"auth.key":                  "12345",
		"ratelimit.requests":        100,
		"ratelimit.window":          time.Minute,
		"log.level":                 "info",
		"shutdown.timeout":          10 * time.Second,
	}
}

// EnvAliases maps the flat environment variable names onto config keys.
func EnvAliases() map[string]string {
	return map[string]string{
		"PORT":             "server.port",
		"API_KEY":          "auth.key",
		"LOG_LEVEL":        "log.level",
		"SHUTDOWN_TIMEOUT": "shutdown.timeout",
	}
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Auth & Rate Limiting ---\n")
	b.WriteString(fmt.Sprintf("  auth.key: %s\n", maskKey(c.Auth.Key)))
	b.WriteString(fmt.Sprintf("  ratelimit.requests: %d\n", c.RateLimit.Requests))
	b.WriteString(fmt.Sprintf("  ratelimit.window: %v\n", c.RateLimit.Window))

	b.WriteString("\n--- Logging & Behavior ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

// maskKey hides the API key in logs, keeping only its length visible.
func maskKey(key string) string {
	if key == "" {
		return "<not configured>"
	}
	return strings.Repeat("*", len(key))
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	return nil
}
