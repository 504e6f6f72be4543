package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/spf13/viper"
)

// Config holds the wgraph tool configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Store StoreConfig `mapstructure:"store"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig locates graph blobs. Relative graph locations are resolved
// against Dir.
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

// Defaults used when neither the config file nor the environment sets a key.
const (
	DefaultLogLevel = "info"
	DefaultStoreDir = "."
)

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		warnings = append(warnings, fmt.Sprintf("log level '%s' is unknown, using '%s'", c.Log.Level, DefaultLogLevel))
	}
	if strings.TrimSpace(c.Store.Dir) == "" {
		warnings = append(warnings, fmt.Sprintf("store dir is empty, using '%s'", DefaultStoreDir))
	}

	return warnings
}

// Load reads configuration from the optional file at path and from
// WGRAPH_* environment variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("store.dir", DefaultStoreDir)
	v.SetEnvPrefix("WGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if warnings := cfg.Validate(); len(warnings) > 0 {
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}
		cfg.applyFallbacks()
	}

	return &cfg, nil
}

func (c *Config) applyFallbacks() {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		c.Log.Level = DefaultLogLevel
	}
	if strings.TrimSpace(c.Store.Dir) == "" {
		c.Store.Dir = DefaultStoreDir
	}
}
