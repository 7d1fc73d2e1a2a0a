// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go so that file deals with YAML structure and
// loading, while this one handles the CLI and MCP surface where settings are
// addressed by dotted keys (e.g., "log.retention").
//
// Pointers are used for optional booleans so "not set" (nil) differs from
// "explicitly false".

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"format.long", "log.enabled", "log.retention"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "format.long":
		return strconv.FormatBool(c.fileLong()), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	case "log.retention":
		return c.RetentionString(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "format.long":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Format.Long = &b
	case "log.enabled":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Log.Enabled = &b
	case "log.retention":
		if _, err := parseRetention(value); err != nil {
			return err
		}
		c.Log.Retention = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"format.long":   strconv.FormatBool(c.fileLong()),
		"log.enabled":   strconv.FormatBool(c.LogEnabled()),
		"log.retention": c.RetentionString(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "format.long":
		return c.Format.Long != nil
	case "log.enabled":
		return c.Log.Enabled != nil
	case "log.retention":
		return c.Log.Retention != ""
	default:
		return false
	}
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
}
