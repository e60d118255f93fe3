package config

import "fmt"

// AuthConfig holds the shared-secret key expected in the x-api-key header.
type AuthConfig struct {
	Key string `koanf:"key"`
}

func (c *AuthConfig) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("API key is not configured")
	}
	return nil
}
