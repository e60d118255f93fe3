// Package configloader loads application configuration from layered sources.
package configloader

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

// Load builds a configuration of type T from four layers, lowest priority first:
// built-in defaults, an optional config.yaml, an optional .env file, and system
// environment variables. The aliases map translates flat environment variable
// names (e.g. PORT, API_KEY) to koanf key paths; variables without an alias are
// ignored.
func Load[T Validator](defaults map[string]any, aliases map[string]string) (T, error) {
	var cfg T
	k := koanf.New(".")

	// 1. Built-in defaults, so a bare environment still boots.
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return cfg, fmt.Errorf("error loading default config: %w", err)
	}

	// 2. Optional YAML config file.
	configFile := "config.yaml"
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	// 3. Optional .env file, translated through the alias map.
	if envFileMap, err := godotenv.Read(".env"); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if path, ok := aliases[key]; ok {
				envMap[path] = value
			}
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 4. System environment variables, the highest priority. The transformer
	// returns "" for variables without an alias, which koanf drops.
	if err := k.Load(env.Provider("", ".", func(key string) string {
		return aliases[key]
	}), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
