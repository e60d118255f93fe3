package config

import (
	"fmt"
	"slices"
)

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) Validate() error {
	valid := []string{"", "debug", "info", "warn", "error"}
	if !slices.Contains(valid, c.Level) {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	return nil
}
