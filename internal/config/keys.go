package config

import (
	"errors"
	"os"
	"strings"
)

// apiKeyEnv is the environment variable checked before any config file.
const apiKeyEnv = "ANTHROPIC_API_KEY"

// ErrNoAPIKey is returned when no API key is configured anywhere.
var ErrNoAPIKey = errors.New("no Anthropic API key configured")

// KeySource says where an API key was loaded from.
type KeySource string

const (
	KeySourceEnv    KeySource = "environment"
	KeySourceConfig KeySource = "config_file"
	KeySourceNone   KeySource = "none"
)

// lookupKey resolves the API key and where it came from. The environment
// variable wins over the config file; ${VAR} references in the config
// value are expanded, and a value that still looks like an unexpanded
// reference counts as absent.
func lookupKey(cfg *Config) (string, KeySource) {
	if key := os.Getenv(apiKeyEnv); key != "" {
		return key, KeySourceEnv
	}

	if cfg != nil && cfg.Anthropic.APIKey != "" {
		key := os.ExpandEnv(cfg.Anthropic.APIKey)
		if key != "" && !strings.HasPrefix(key, "${") {
			return key, KeySourceConfig
		}
	}

	return "", KeySourceNone
}

// GetAPIKey returns the Anthropic API key, or ErrNoAPIKey when neither
// the environment nor the config file provides one.
func GetAPIKey(cfg *Config) (string, error) {
	key, source := lookupKey(cfg)
	if source == KeySourceNone {
		return "", ErrNoAPIKey
	}
	return key, nil
}

// GetAPIKeySource reports where GetAPIKey would find the key.
func GetAPIKeySource(cfg *Config) KeySource {
	_, source := lookupKey(cfg)
	return source
}

// ValidateAPIKey performs format checks on an API key. It does not
// verify the key against the API.
func ValidateAPIKey(key string) error {
	if key == "" {
		return ErrNoAPIKey
	}

	// Anthropic API keys start with "sk-ant-"
	if !strings.HasPrefix(key, "sk-ant-") {
		return errors.New("invalid API key format: expected 'sk-ant-' prefix")
	}

	if len(key) < 20 {
		return errors.New("invalid API key format: key too short")
	}

	return nil
}

// MaskAPIKey returns a masked version of the API key for display.
// Shows the first 7 characters (sk-ant-) and last 4 characters.
func MaskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}

	if len(key) <= 15 {
		return "***"
	}

	return key[:7] + "..." + key[len(key)-4:]
}
