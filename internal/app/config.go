package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete client configuration, loadable from environment
// variables (ADRESUR_ prefix), flags, or YAML config files.
type Config struct {
	BaseURL  string        `default:"http://localhost:8000" usage:"Adresur backend base URL" flag:"base-url"`
	StateDir string        `usage:"Directory for token and cart state (default: user config dir)" flag:"state-dir"`
	Timeout  time.Duration `default:"30s" usage:"HTTP request timeout"`
	Log      LogConfig
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `default:"warn" usage:"Log level (debug, info, warn, error)"`
	Format string `default:"console" usage:"Log format (console, json)"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, and resolves the state directory default.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:          "ADRESUR",
		SkipFlags:          true,
		AllowUnknownFields: true,
		Files:              []string{"adresur.yaml", defaultConfigPath()},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.StateDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve user config dir")
		}
		cfg.StateDir = filepath.Join(dir, "adresur")
	}
	return &cfg, nil
}

// defaultConfigPath points at the per-user config file; missing files are
// simply skipped by the loader.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "adresur", "config.yaml")
}
