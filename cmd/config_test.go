package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/ms/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config")
	env.equals(out, "format.long: false\nlog.enabled: true\nlog.retention: 30d")
}

func TestConfig_SetGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"format.long", "true"},
		{"log.enabled", "false"},
		{"log.retention", "7d"},
		{"log.retention", "12 hours"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("config", tc.key, tc.value)
			env.contains(out, "(global)")
			env.equals(env.run("config", tc.key), tc.value)
			assert.FileExists(t, filepath.Join(env.home, config.Dir, "config.yaml"))
		})
	}
}

func TestConfig_Local(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "--local", "format.long", "true")
	env.contains(out, "(local)")
	assert.FileExists(t, filepath.Join(env.dir, config.Dir, "config.yaml"))

	// Local now exists, so plain reads come from it
	env.equals(env.run("config", "format.long"), "true")

	_, err := os.Stat(filepath.Join(env.home, config.Dir, "config.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown key get", []string{"config", "author.name"}, config.ErrUnknownKey},
		{"unknown key set", []string{"config", "author.name", "x"}, config.ErrUnknownKey},
		{"bad bool", []string{"config", "format.long", "maybe"}, config.ErrInvalidValue},
		{"bad retention", []string{"config", "log.retention", "forever"}, config.ErrInvalidValue},
		{"negative retention", []string{"config", "--", "log.retention", "-1d"}, config.ErrInvalidValue},
		{"retention too large to prune", []string{"config", "log.retention", "1000y"}, config.ErrInvalidValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.runErr(tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfig_ShowsFileValueNotEnv(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv(config.EnvLong, "1")

	env.equals(env.run("config", "format.long"), "false")
	env.contains(env.run("config"), "format.long: false")
}

func TestConfig_JSON(t *testing.T) {
	env := newTestEnv(t)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(env.run("-o", "json", "config")), &got))
	assert.Equal(t, "30d", got["log.retention"])
	assert.Len(t, got, len(config.ValidKeys()))
}
