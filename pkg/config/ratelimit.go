package config

import (
	"fmt"
	"time"
)

// RateLimitConfig controls the per-IP request throttle.
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

func (c *RateLimitConfig) Validate() error {
	if c.Requests <= 0 {
		return fmt.Errorf("invalid rate limit request count: %d", c.Requests)
	}
	if c.Window <= 0 {
		return fmt.Errorf("invalid rate limit window: %v", c.Window)
	}
	return nil
}
