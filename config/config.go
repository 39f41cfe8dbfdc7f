// Package config loads the accumulator demo's runtime configuration from
// environment variables, following the plain env-var loader pattern used
// across the pack rather than a flags/viper-style framework.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config selects the curve and hash backends the demo CLI wires together.
type Config struct {
	// Curve names the group.Group constructor to use: "secp256k1" (the
	// default), "p256", "p384", "ristretto255", or "modp3072".
	Curve string
	// HashBackend names the hashfn.Func to use: "sha256" (default),
	// "keccak256", or "blake2b-256".
	HashBackend string
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// Load reads configuration from environment variables, applying the
// documented defaults when unset.
func Load() *Config {
	return &Config{
		Curve:       getEnv("CKACC_CURVE", "secp256k1"),
		HashBackend: getEnv("CKACC_HASH", "sha256"),
		LogLevel:    getEnv("CKACC_LOG_LEVEL", "info"),
	}
}

// Validate checks that the configured names are ones this module knows how
// to resolve.
func (c *Config) Validate() error {
	var errs []string

	switch c.Curve {
	case "secp256k1", "p256", "p384", "ristretto255", "modp3072":
	default:
		errs = append(errs, fmt.Sprintf("CKACC_CURVE: unknown curve %q", c.Curve))
	}

	switch c.HashBackend {
	case "sha256", "keccak256", "blake2b-256":
	default:
		errs = append(errs, fmt.Sprintf("CKACC_HASH: unknown hash backend %q", c.HashBackend))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("CKACC_LOG_LEVEL: unknown level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
