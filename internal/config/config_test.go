package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: DefaultLogLevel}, Store: StoreConfig{Dir: DefaultStoreDir}}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_Warnings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad level", Config{Log: LogConfig{Level: "loud"}, Store: StoreConfig{Dir: "."}}, "log level"},
		{"empty dir", Config{Log: LogConfig{Level: "debug"}, Store: StoreConfig{Dir: " "}}, "store dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.cfg.Validate()
			require.Len(t, warnings, 1)
			assert.True(t, strings.Contains(warnings[0], tt.want), "got %q", warnings[0])
		})
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultStoreDir, cfg.Store.Dir)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nstore:\n  dir: /var/graphs\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/graphs", cfg.Store.Dir)

	t.Setenv("WGRAPH_STORE_DIR", "/srv/graphs")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/graphs", cfg.Store.Dir, "environment wins over file")
}

func TestLoad_FallbackOnBadLevel(t *testing.T) {
	t.Setenv("WGRAPH_LOG_LEVEL", "loud")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
