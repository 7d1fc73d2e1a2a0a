// Package config provides reading and writing of ms configuration.
// Supports both global (~/.ms/config.yaml) and local (.ms/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jpl-au/ms/duration"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.ms/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .ms/config.yaml
	ScopeLocal
)

// EnvLong overrides format.long when set to a boolean value.
const EnvLong = "MS_LONG"

// DefaultRetention is how long audit log entries are kept by "ms log --prune".
const DefaultRetention = "30d"

// Format holds output formatting options.
type Format struct {
	Long *bool `yaml:"long,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Enabled   *bool  `yaml:"enabled,omitempty"`
	Retention string `yaml:"retention,omitempty"`
}

// Config contains configuration for ms.
type Config struct {
	Format Format `yaml:"format,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Log.Retention != "" {
		if _, err := parseRetention(c.Log.Retention); err != nil {
			return err
		}
	}
	return nil
}

// Long reports whether verbose formatting is the default. MS_LONG, when set
// to a valid boolean, takes precedence over the file.
func (c *Config) Long() bool {
	if v, ok := envBool(EnvLong); ok {
		return v
	}
	return c.fileLong()
}

// fileLong is format.long as stored, ignoring MS_LONG.
func (c *Config) fileLong() bool {
	return c.Format.Long != nil && *c.Format.Long
}

// LogEnabled reports whether conversions are written to the audit log
// (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// Retention returns how long audit log entries are kept.
func (c *Config) Retention() time.Duration {
	d, err := parseRetention(c.RetentionString())
	if err != nil {
		// Validate rejects bad values on load, so only hand-built configs get here
		d, _ = parseRetention(DefaultRetention)
	}
	return d
}

// RetentionString returns the retention as written in the config, or the default.
func (c *Config) RetentionString() string {
	if c.Log.Retention == "" {
		return DefaultRetention
	}
	return c.Log.Retention
}

// parseRetention accepts any duration string of at least one millisecond
// that fits in a time.Duration.
func parseRetention(s string) (time.Duration, error) {
	d, err := duration.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: log.retention: %w", ErrInvalidValue, err)
	}
	if d < time.Millisecond {
		return 0, fmt.Errorf("%w: log.retention must be at least 1ms, such as 30d, got %q", ErrInvalidValue, s)
	}
	return d, nil
}

func envBool(name string) (bool, bool) {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "True", "yes":
		return true, true
	case "0", "false", "FALSE", "False", "no":
		return false, true
	default:
		return false, false
	}
}

// Dir is the directory name holding config and log files.
const Dir = ".ms"

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.ms/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
